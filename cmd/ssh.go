package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
)

var (
	sshBackup  bool
	sshRestore bool
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Back up or restore SSH keys",
	Long: `Back up every file in your SSH directory into an encrypted archive in the
config directory, or restore them onto this machine. Restore re-applies the
permission bits sshd requires (0600 files, 0700 directory).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(sshBackup, sshRestore)
		if err != nil {
			return err
		}
		return runArchiveJob(cmd.Context(), op, sshTarget(config.GetConfig()))
	},
}

func init() {
	rootCmd.AddCommand(sshCmd)
	sshCmd.Flags().BoolVar(&sshBackup, "backup", false, "archive SSH keys into the config directory")
	sshCmd.Flags().BoolVar(&sshRestore, "restore", false, "restore SSH keys from the config directory")
}
