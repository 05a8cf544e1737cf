package tasks

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// FindSolutionRoot walks up from dir until it finds <solution>.sln and
// returns the containing directory. When no solution file exists
// anywhere above dir, dir itself is returned so tasks behave as if they
// were invoked from the root.
func FindSolutionRoot(dir, solution string) (string, error) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return "", eris.Wrapf(err, "Failed to resolve %s", dir)
	}
	start := path

	for {
		slnPath := filepath.Join(path, solution+".sln")
		_, err := os.Stat(slnPath)
		if err == nil {
			return path, nil
		}
		if !eris.Is(err, os.ErrNotExist) {
			return "", eris.Wrapf(err, "Failed to check %s", slnPath)
		}

		parent := filepath.Dir(path)
		if parent == path {
			return start, nil
		}
		path = parent
	}
}
