package cli

import (
	"fmt"
	"path/filepath"

	"github.com/comanda/comanda/internal/adapters/outbound/config"
	"github.com/comanda/comanda/internal/adapters/outbound/tui"
	"github.com/comanda/comanda/internal/domain"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu [path]",
		Short: "Show the scenario's showcase menu",
		Long:  "Build the scenario's showcase dishes through the factory, apply their extras, and render the resulting menu with final prices.",
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

			factory := domain.NewFactory()
			var dishes []domain.Dish
			for _, spec := range scenario.Showcase {
				price, err := spec.ParsePrice()
				if err != nil {
					return err
				}
				dish, err := factory.Create(spec.Kind, spec.Name, price)
				if err != nil {
					return err
				}
				for _, extra := range spec.Extras {
					if dish, err = domain.ApplyExtra(dish, extra); err != nil {
						return err
					}
				}
				dishes = append(dishes, dish)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(scenario.Title, dishes))
			return nil
		},
	}

	return cmd
}
