package tasks

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countEntries(seq []string, entry string) int {
	count := 0
	for _, item := range seq {
		if item == entry {
			count++
		}
	}
	return count
}

func assemblyEntry(nunit, project string) string {
	return nunit + " " + filepath.Join(project, "bin", "Debug", project+".dll")
}

func TestTest(t *testing.T) {
	t.Run("all projects pass", func(t *testing.T) {
		cfg := testConfig()
		proc, scripts, seq := newFakes()
		orch := newTestOrchestrator(cfg, proc, scripts)

		results, err := orch.Test(testCtx())

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Failed())
		assert.Equal(t, []string{
			cfg.Scripts.StartApp + " ServerConsole",
			assemblyEntry(cfg.NUnit(), "TestGamma"),
			cfg.Scripts.Stop,
		}, *seq)
	})

	t.Run("a failing project doesn't stop the loop", func(t *testing.T) {
		cfg := testConfig()
		cfg.TestProjects = []string{"TestGamma", "TestDelta"}
		proc, scripts, seq := newFakes()
		proc.fail = func(exe string, args []string) error {
			if strings.Contains(args[0], "TestGamma") {
				return eris.New("3 tests failed")
			}
			return nil
		}
		orch := newTestOrchestrator(cfg, proc, scripts)

		results, err := orch.Test(testCtx())

		require.Error(t, err)
		assert.Contains(t, eris.ToString(err, false), "1 of 2")
		require.Len(t, results, 2)
		assert.True(t, results[0].Failed())
		assert.False(t, results[1].Failed())
		assert.Equal(t, 1, countEntries(*seq, cfg.Scripts.Stop))
	})

	t.Run("stop runs exactly once even on failure", func(t *testing.T) {
		cfg := testConfig()
		proc, scripts, seq := newFakes()
		proc.fail = func(exe string, args []string) error {
			return eris.New("nunit crashed")
		}
		orch := newTestOrchestrator(cfg, proc, scripts)

		_, err := orch.Test(testCtx())

		require.Error(t, err)
		assert.Equal(t, 1, countEntries(*seq, cfg.Scripts.Stop))
	})

	t.Run("no shutdown when the server never started", func(t *testing.T) {
		cfg := testConfig()
		proc, scripts, seq := newFakes()
		scripts.fail = func(script string, args []string) error {
			if script == cfg.Scripts.StartApp {
				return eris.New("port already in use")
			}
			return nil
		}
		orch := newTestOrchestrator(cfg, proc, scripts)

		results, err := orch.Test(testCtx())

		require.Error(t, err)
		assert.Nil(t, results)
		assert.Equal(t, 0, countEntries(*seq, cfg.Scripts.Stop))
	})

	t.Run("cancellation stops the loop but not the shutdown", func(t *testing.T) {
		cfg := testConfig()
		proc, scripts, seq := newFakes()
		orch := newTestOrchestrator(cfg, proc, scripts)

		ctx, cancel := context.WithCancel(testCtx())
		cancel()

		_, err := orch.Test(ctx)

		require.Error(t, err)
		assert.True(t, eris.Is(err, context.Canceled))
		assert.Equal(t, 0, countEntries(*seq, assemblyEntry(cfg.NUnit(), "TestGamma")))
		assert.Equal(t, 1, countEntries(*seq, cfg.Scripts.Stop))
	})
}
