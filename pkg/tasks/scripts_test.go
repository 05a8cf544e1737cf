package tasks

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellScriptRunner(t *testing.T) {
	t.Run("passes positional arguments", func(t *testing.T) {
		dir := t.TempDir()
		script := filepath.Join(dir, "start_application.sh")
		out := filepath.Join(dir, "out.txt")
		content := fmt.Sprintf("echo \"started $1\" > %q\n", out)
		require.NoError(t, ioutil.WriteFile(script, []byte(content), 0700))

		err := shellScriptRunner{}.RunScript(context.Background(), script, "ServerConsole")
		require.NoError(t, err)

		data, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "started ServerConsole\n", string(data))
	})

	t.Run("missing script", func(t *testing.T) {
		script := filepath.Join(t.TempDir(), "stop.sh")

		err := shellScriptRunner{}.RunScript(context.Background(), script)
		assert.Error(t, err)
	})

	t.Run("a failing command aborts the script", func(t *testing.T) {
		dir := t.TempDir()
		script := filepath.Join(dir, "start.sh")
		out := filepath.Join(dir, "out.txt")
		content := fmt.Sprintf("false\necho ok > %q\n", out)
		require.NoError(t, ioutil.WriteFile(script, []byte(content), 0700))

		err := shellScriptRunner{}.RunScript(context.Background(), script)
		require.Error(t, err)

		_, err = os.Stat(out)
		assert.True(t, os.IsNotExist(err))
	})
}
