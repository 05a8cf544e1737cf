package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts all configured applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Start(ctx)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stops all running applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Stop(ctx)
	},
}

// startAppCmd builds the start_* shortcuts; each one boots a single
// application with a fixed name.
func startAppCmd(use, app string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Starts the %s application", app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, orch, err := taskSetup(cmd)
			if err != nil {
				return err
			}

			return orch.StartApp(ctx, app)
		},
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(startAppCmd("start_sc", "ServerConsole"))
	rootCmd.AddCommand(startAppCmd("start_oc", "OfficeConsole"))
	rootCmd.AddCommand(startAppCmd("start_mcc", "MultiClientConsole"))
}
