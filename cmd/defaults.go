package cmd

import (
	"github.com/spf13/cobra"
)

var (
	defaultsBackup  bool
	defaultsRestore bool
)

var defaultsCmd = &cobra.Command{
	Use:   "macos-defaults",
	Short: "Back up or restore macOS preference domains",
	Long: `Export every preference domain (plus NSGlobalDomain) to its own plist and
archive the lot, or import each exported domain back on restore.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(defaultsBackup, defaultsRestore)
		if err != nil {
			return err
		}
		return runArchiveJob(cmd.Context(), op, defaultsTarget())
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	defaultsCmd.Flags().BoolVar(&defaultsBackup, "backup", false, "export all preference domains")
	defaultsCmd.Flags().BoolVar(&defaultsRestore, "restore", false, "import archived preference domains")
}
