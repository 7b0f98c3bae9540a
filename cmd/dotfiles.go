package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/dotfiles"
	"github.com/josephjohncox/dotvault/internal/logger"
)

var linkDotfilesCmd = &cobra.Command{
	Use:   "link-dotfiles",
	Short: "Symlink dotfiles from the config directory into $HOME",
	Long: `Create a symlink in $HOME for every entry of the dotfiles mapping in the
config file. Existing regular files are displaced to <name>.bak first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())
		cfg := config.GetConfig()

		if len(cfg.Dotfiles) == 0 {
			l.Warn("No dotfiles mapping configured, nothing to link")
			return nil
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return dotfiles.NewLinker(cfg.ConfigDir, home, l).Link(cfg.Dotfiles)
	},
}

func init() {
	rootCmd.AddCommand(linkDotfilesCmd)
}
