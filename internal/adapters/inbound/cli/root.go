package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comanda",
		Short: "Restaurant order demo: factory, extras, observers",
		Long:  "Comanda narrates a toy restaurant order model: a dish factory, price-modifying extras, and orders that notify their customers on every state change.",

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newMenuCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
