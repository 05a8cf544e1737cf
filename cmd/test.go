package cmd

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Runs the NUnit test projects against a running server",
	Long: `Starts the server application, runs the NUnit console against every test
project's Debug assembly and stops the server again. The server is shut
down even when test projects fail; the command still exits non-zero in
that case.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, orch, err := taskSetup(cmd)
		if err != nil {
			return err
		}

		results, err := orch.Test(ctx)

		printTask("Test results")
		for _, result := range results {
			if result.Failed() {
				printError(fmt.Sprintf("%s: %s", result.Project, eris.ToString(result.Err, false)))
			} else {
				printSubtask(result.Project + ": passed")
			}
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
