package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/tools"
)

var secretsCheckCmd = &cobra.Command{
	Use:   "secrets-check",
	Short: "Scan the config directory for plaintext secrets",
	Long: `Run a secret scanner over the config directory before pushing it anywhere.
Everything sensitive should only ever be inside the encrypted archives; this
catches anything that slipped in as plaintext.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())
		cfg := config.GetConfig()

		l.Info("Scanning for plaintext secrets", "dir", cfg.ConfigDir)
		if err := tools.NewSecretScan(runner, l).Check(cmd.Context(), cfg.ConfigDir); err != nil {
			return err
		}
		l.Info("No plaintext secrets found")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(secretsCheckCmd)
}
