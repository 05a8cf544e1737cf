package tasks

import (
	"context"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// TestResult is the outcome of running one test project's assembly.
type TestResult struct {
	Project string
	Err     error
}

// Failed reports whether the test run for this project failed.
func (r TestResult) Failed() bool {
	return r.Err != nil
}

// Test starts the configured server application, runs the NUnit console
// against every test project's Debug assembly and shuts the server down
// again. Once the server is up, the stop script runs on every exit
// path. A failing test project doesn't stop the loop; the failures are
// collected per project and reported through the returned error after
// the shutdown.
func (o *Orchestrator) Test(ctx context.Context) (results []TestResult, err error) {
	err = o.StartApp(ctx, o.cfg.ServerApp)
	if err != nil {
		return nil, err
	}

	defer func() {
		stopErr := o.Stop(ctx)
		if err == nil {
			err = stopErr
		}
	}()

	failed := 0
	for _, project := range o.cfg.TestProjects {
		if err = ctx.Err(); err != nil {
			return results, err
		}

		assembly := filepath.Join(".", project, "bin", "Debug", project+".dll")
		runErr := o.run(ctx, o.cfg.NUnit(), assembly)
		results = append(results, TestResult{Project: project, Err: runErr})
		if runErr != nil {
			failed++
		}
	}

	if failed > 0 {
		err = eris.Errorf("%d of %d test projects failed", failed, len(o.cfg.TestProjects))
	}

	return results, err
}
