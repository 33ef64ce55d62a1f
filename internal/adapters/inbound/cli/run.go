package cli

import (
	"fmt"

	"github.com/comanda/comanda/internal/adapters/outbound/config"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file",
		Long:  "Execute a YAML scenario file describing dishes, extras, orders, observers and state transitions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.New().LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("loading scenario: %w", err)
			}

			return runScenario(cmd, scenario, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output transcript as JSON")

	return cmd
}
