package cmd

import (
	"github.com/spf13/cobra"
)

var (
	gpgBackup  bool
	gpgRestore bool
)

var gpgCmd = &cobra.Command{
	Use:   "gpg",
	Short: "Back up or restore the GPG keyring",
	Long: `Export the public and secret keyrings plus ownertrust into an encrypted
archive, or import them back into the local keyring store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(gpgBackup, gpgRestore)
		if err != nil {
			return err
		}
		return runArchiveJob(cmd.Context(), op, gpgTarget())
	},
}

func init() {
	rootCmd.AddCommand(gpgCmd)
	gpgCmd.Flags().BoolVar(&gpgBackup, "backup", false, "export the keyring into the config directory")
	gpgCmd.Flags().BoolVar(&gpgRestore, "restore", false, "import the keyring from the config directory")
}
