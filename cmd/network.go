package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/tools"
)

var networkCmd = &cobra.Command{
	Use:           "network",
	Short:         "List configured network services",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := tools.NewNetwork(runner).ListServices(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range services {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
