package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/tools"
)

var (
	fwEnable  bool
	fwDisable bool
	fwStatus  bool
)

var firewallCmd = &cobra.Command{
	Use:           "firewall",
	Short:         "Toggle or inspect the macOS application firewall",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logger.FromContext(cmd.Context())
		fw := tools.NewFirewall(runner)

		switch {
		case fwEnable && !fwDisable && !fwStatus:
			l.Info("Enabling application firewall")
			return fw.Enable(cmd.Context())
		case fwDisable && !fwEnable && !fwStatus:
			l.Info("Disabling application firewall")
			return fw.Disable(cmd.Context())
		case fwStatus && !fwEnable && !fwDisable:
			state, err := fw.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), state)
			return nil
		default:
			return fmt.Errorf("exactly one of --enable, --disable, or --status is required")
		}
	},
}

func init() {
	rootCmd.AddCommand(firewallCmd)
	firewallCmd.Flags().BoolVar(&fwEnable, "enable", false, "turn the firewall on")
	firewallCmd.Flags().BoolVar(&fwDisable, "disable", false, "turn the firewall off")
	firewallCmd.Flags().BoolVar(&fwStatus, "status", false, "print the firewall state")
}
