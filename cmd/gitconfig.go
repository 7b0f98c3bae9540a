package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/archive"
	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/fsutil"
	"github.com/josephjohncox/dotvault/internal/logger"
)

var (
	gitCfgBackup  bool
	gitCfgRestore bool
)

// gitConfigFiles maps names in the config repo to their home locations.
var gitConfigFiles = map[string]string{
	"gitconfig":        ".gitconfig",
	"gitignore_global": ".gitignore_global",
}

var gitConfigCmd = &cobra.Command{
	Use:   "git-config",
	Short: "Copy git configuration to or from the config directory",
	Long: `Plain (unencrypted) copies of ~/.gitconfig and ~/.gitignore_global to and
from the config directory; they carry no secrets and sit in the repo as-is.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(gitCfgBackup, gitCfgRestore)
		if err != nil {
			return err
		}
		return gitConfigRun(cmd.Context(), op)
	},
}

func gitConfigRun(ctx context.Context, op archive.Op) error {
	l := logger.FromContext(ctx)
	cfg := config.GetConfig()
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	repoDir := filepath.Join(cfg.ConfigDir, "git")

	for repoName, homeName := range gitConfigFiles {
		repoPath := filepath.Join(repoDir, repoName)
		homePath := filepath.Join(home, homeName)

		src, dst := homePath, repoPath
		if op == archive.OpRestore {
			src, dst = repoPath, homePath
		}

		if !fsutil.Exists(src) {
			l.Warn("Skipping missing file", "path", src)
			continue
		}
		if err := fsutil.CopyFile(src, dst, 0); err != nil {
			return err
		}
		l.Info("Copied", "from", src, "to", dst)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(gitConfigCmd)
	gitConfigCmd.Flags().BoolVar(&gitCfgBackup, "backup", false, "copy git config into the config directory")
	gitConfigCmd.Flags().BoolVar(&gitCfgRestore, "restore", false, "copy git config back into $HOME")
}
