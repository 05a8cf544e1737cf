package tasks

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ProcessRunner executes a single external program with discrete
// arguments. The call blocks until the process exits; a non-zero exit
// status is returned as an error.
type ProcessRunner interface {
	RunProcess(ctx context.Context, exe string, args ...string) error
}

type execRunner struct{}

func (execRunner) RunProcess(ctx context.Context, exe string, args ...string) error {
	proc := exec.CommandContext(ctx, exe, args...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	err := proc.Run()
	if err != nil {
		return eris.Wrapf(err, "%s failed", filepath.Base(exe))
	}

	return nil
}

// CommandLine renders an invocation the way it is logged: the
// executable surrounded by quotes, the arguments appended verbatim.
// Only the executable path is defended against spaces; project and
// solution names are expected to be safe.
func CommandLine(exe string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, `"`+exe+`"`)
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
