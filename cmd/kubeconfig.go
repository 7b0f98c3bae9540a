package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/logger"
)

var (
	kubeBackup  bool
	kubeRestore bool
)

var kubeConfigCmd = &cobra.Command{
	Use:   "kube-config",
	Short: "Back up or restore kube and docker client configs",
	Long: `Archive ~/.kube/config and ~/.docker/config.json (both carry cluster and
registry credentials) into one encrypted archive, or restore them at 0600.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(kubeBackup, kubeRestore)
		if err != nil {
			return err
		}
		l := logger.FromContext(cmd.Context())
		return runArchiveJob(cmd.Context(), op, kubeTarget(l))
	},
}

func init() {
	rootCmd.AddCommand(kubeConfigCmd)
	kubeConfigCmd.Flags().BoolVar(&kubeBackup, "backup", false, "archive kube/docker configs")
	kubeConfigCmd.Flags().BoolVar(&kubeRestore, "restore", false, "restore kube/docker configs")
}
