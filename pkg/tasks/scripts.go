package tasks

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptRunner executes one of the application lifecycle scripts. The
// args are exposed to the script as positional parameters.
type ScriptRunner interface {
	RunScript(ctx context.Context, script string, args ...string) error
}

// shellScriptRunner runs the scripts through an embedded POSIX shell so
// the same start/stop scripts work on every platform.
type shellScriptRunner struct{}

func (shellScriptRunner) RunScript(ctx context.Context, script string, args ...string) error {
	file, err := os.Open(script)
	if err != nil {
		return eris.Wrapf(err, "Could not open script %s", script)
	}
	defer file.Close()

	parsed, err := syntax.NewParser().Parse(file, script)
	if err != nil {
		return eris.Wrapf(err, "Failed to parse script %s", script)
	}

	params := append([]string{"-e", "--"}, args...)
	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, os.Stdout, os.Stderr),
		interp.Params(params...),
	)
	if err != nil {
		return eris.Wrap(err, "Failed to initialize the script runner")
	}

	return runner.Run(ctx, parsed)
}
