package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
)

var (
	plistsBackup  bool
	plistsRestore bool
)

var plistsCmd = &cobra.Command{
	Use:   "sync-plists",
	Short: "Back up or restore the configured application plists",
	Long: `Archive the fixed list of application preference files named in the config
(iTerm2, Rectangle, and friends), or copy them back into ~/Library/Preferences.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(plistsBackup, plistsRestore)
		if err != nil {
			return err
		}
		l := logger.FromContext(cmd.Context())
		return runArchiveJob(cmd.Context(), op, plistTarget(config.GetConfig(), l))
	},
}

func init() {
	rootCmd.AddCommand(plistsCmd)
	plistsCmd.Flags().BoolVar(&plistsBackup, "backup", false, "archive the configured plists")
	plistsCmd.Flags().BoolVar(&plistsRestore, "restore", false, "restore the configured plists")
}
