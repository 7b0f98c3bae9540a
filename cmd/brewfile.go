package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/tools"
)

var (
	brewBackup  bool
	brewRestore bool
	brewCheck   bool
)

var brewfileCmd = &cobra.Command{
	Use:   "brewfile",
	Short: "Dump, install, or check the Homebrew package manifest",
	Long: `Maintain the Brewfile in the config directory: --backup dumps the installed
packages, --restore installs from the manifest, --check reports drift.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())
		cfg := config.GetConfig()
		brew := tools.NewBrew(runner, filepath.Join(cfg.ConfigDir, "Brewfile"))

		switch {
		case brewBackup && !brewRestore && !brewCheck:
			l.Info("Dumping Brewfile", "path", brew.Brewfile)
			return brew.Dump(cmd.Context())
		case brewRestore && !brewBackup && !brewCheck:
			l.Info("Installing from Brewfile", "path", brew.Brewfile)
			return brew.Install(cmd.Context())
		case brewCheck && !brewBackup && !brewRestore:
			return brew.Check(cmd.Context())
		default:
			return fmt.Errorf("exactly one of --backup, --restore, or --check is required")
		}
	},
}

func init() {
	rootCmd.AddCommand(brewfileCmd)
	brewfileCmd.Flags().BoolVar(&brewBackup, "backup", false, "dump installed packages to the Brewfile")
	brewfileCmd.Flags().BoolVar(&brewRestore, "restore", false, "install packages from the Brewfile")
	brewfileCmd.Flags().BoolVar(&brewCheck, "check", false, "check installed packages against the Brewfile")
}
