package cmd

import (
	"github.com/spf13/cobra"
)

var updateEnvCmd = &cobra.Command{
	Use:     "update_env",
	Aliases: []string{"update_packages"},
	Short:   "Restores the NuGet packages of every project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.UpdatePackages(ctx)
	},
}

func init() {
	rootCmd.AddCommand(updateEnvCmd)
}
