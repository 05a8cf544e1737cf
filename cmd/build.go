package cmd

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the solution in the Debug configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Build(ctx)
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Builds the solution in the Release configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Release(ctx)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Runs the Clean target and removes all obj and bin directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		return orch.Clean(ctx)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(cleanCmd)
}
