package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/tools"
)

var (
	syncTo      bool
	syncFrom    bool
	syncMessage string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the config directory with its git remote",
	Long: `--sync-to stages, commits, and pushes the config directory; --sync-from
pulls the remote state onto this machine. The config directory is expected to
be a git repository with the configured remote and branch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())
		cfg := config.GetConfig()
		repo := tools.NewGitRepo(runner, cfg.ConfigDir, cfg.GitRemote, cfg.GitBranch)

		switch {
		case syncTo && !syncFrom:
			l.Info("Pushing config repository", "remote", cfg.GitRemote, "branch", cfg.GitBranch)
			return repo.SyncTo(cmd.Context(), syncMessage)
		case syncFrom && !syncTo:
			l.Info("Pulling config repository", "remote", cfg.GitRemote, "branch", cfg.GitBranch)
			return repo.SyncFrom(cmd.Context())
		default:
			return fmt.Errorf("exactly one of --sync-to or --sync-from is required")
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&syncTo, "sync-to", false, "commit and push the config directory")
	syncCmd.Flags().BoolVar(&syncFrom, "sync-from", false, "pull the config directory from the remote")
	syncCmd.Flags().StringVar(&syncMessage, "message", "dotvault sync", "commit message for --sync-to")
}
