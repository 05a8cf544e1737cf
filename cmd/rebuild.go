package cmd

import (
	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Cleans, restores packages and builds the solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Rebuild(ctx)
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Stops the applications, rebuilds the solution and starts them again",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Restart(ctx)
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(restartCmd)
}
