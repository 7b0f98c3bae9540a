package cmd

import (
	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
)

const DOTVAULT_VERSION = "0.1.0"

var (
	cfgFile string
	LogJSON bool
	NoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "dotvault",
	Short: "dotvault backs up and restores your personal machine configuration",
	Long: `dotvault archives and encrypts sensitive local state (SSH keys, GPG keyring,
	macOS preference domains, application plists, kube/docker client configs) into a
	version-controlled config directory, and restores it onto a fresh machine. Encrypted
	archives are standard tar.gz.gpg files readable by stock gpg with the same passphrase.
	Everything else (Brewfile, git config, firewall, dotfile links, secret scanning) is a
	thin wrapper over the native tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(cfgFile); err != nil {
			return err
		}

		cfg := config.GetConfig()
		l := logger.New(logger.Config{
			JSON:    LogJSON || cfg.LogJSON,
			NoColor: NoColor || cfg.NoColor,
		})
		cmd.SetContext(logger.IntoContext(cmd.Context(), l))
		return nil
	},
}

func init() {
	rootCmd.Version = DOTVAULT_VERSION
	rootCmd.SetVersionTemplate("dotvault version {{ .Version }}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&LogJSON, "log-json", false, "emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&NoColor, "no-color", false, "disable colored log output")
}

func Execute() error {
	return rootCmd.Execute()
}
