package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/comanda/comanda/internal/adapters/outbound/config"
	"github.com/comanda/comanda/internal/adapters/outbound/tui"
	"github.com/comanda/comanda/internal/application"
	"github.com/comanda/comanda/internal/domain"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "demo [path]",
		Short: "Run the built-in order demonstration",
		Long:  "Run the demonstration scenario: create dishes through the factory, wrap them with extras, and drive orders through their states while customers observe. A .comanda.yaml in the target directory replaces the built-in scenario.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			scenario, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading scenario: %w", err)
			}

			return runScenario(cmd, scenario, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output transcript as JSON")

	return cmd
}

func runScenario(cmd *cobra.Command, scenario domain.Scenario, jsonOutput bool) error {
	svc := application.NewScenarioService(
		domain.NewFactory(),
		domain.NewIDSequence(),
	)

	transcript, err := svc.Run(scenario)
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}

	if jsonOutput {
		return renderJSON(cmd, transcript)
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderTranscript(transcript))
	return nil
}

func renderJSON(cmd *cobra.Command, transcript *domain.Transcript) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(transcript)
}
