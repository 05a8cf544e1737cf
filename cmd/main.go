package cmd

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/uacl/build-tools/pkg/config"
	"github.com/uacl/build-tools/pkg/tasks"
)

var rootCmd = &cobra.Command{
	Use:   "uatool",
	Short: "Build and test tasks for the ua_utilities solution",
	Long: `This command bundles the day-to-day tasks for the ua_utilities solution:
building through MSBuild, restoring NuGet packages, running the NUnit test
projects and starting/stopping the console applications.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"path to the local override config (defaults to $UATOOL_CONFIG, then "+config.DefaultOverridePath+")")
	rootCmd.PersistentFlags().BoolP("dry", "n", false,
		"dry run; only print the external commands, don't execute anything")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
}

// taskSetup builds the pieces every task command needs: a context that
// carries the logger and an orchestrator configured from the defaults
// plus the optional override file. It also switches the working
// directory to the solution root.
func taskSetup(cmd *cobra.Command) (context.Context, *tasks.Orchestrator, error) {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, nil, err
	}

	dryRun, err := cmd.Flags().GetBool("dry")
	if err != nil {
		return nil, nil, err
	}

	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	logger := zerolog.New(NewConsoleWriter())
	if !debug {
		logger = logger.Level(zerolog.InfoLevel)
	}
	ctx := tasks.WithLogger(context.Background(), &logger)

	if cfgPath == "" {
		cfgPath = os.Getenv("UATOOL_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = config.DefaultOverridePath
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	root, err := tasks.FindSolutionRoot(".", cfg.Solution)
	if err != nil {
		return nil, nil, err
	}

	err = os.Chdir(root)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "Could not switch to %s", root)
	}

	return ctx, tasks.New(cfg, dryRun), nil
}
