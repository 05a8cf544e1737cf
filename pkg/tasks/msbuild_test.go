package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMSBuildCommand(t *testing.T) {
	exe := "/opt/msbuild/MSBuild.exe"

	t.Run("debug build", func(t *testing.T) {
		cmd := MSBuildCommand(exe, "ua_utilities", "Build", "Debug")
		assert.Equal(t,
			`"/opt/msbuild/MSBuild.exe" /m /t:Build /p:Configuration=Debug ua_utilities.sln`,
			cmd.String())
	})

	t.Run("release configuration", func(t *testing.T) {
		cmd := MSBuildCommand(exe, "ua_utilities", "Build", "Release")
		assert.Contains(t, cmd.Args, "/p:Configuration=Release")
	})

	t.Run("clean has no configuration", func(t *testing.T) {
		cmd := MSBuildCommand(exe, "ua_utilities", "Clean", "")
		assert.Equal(t,
			`"/opt/msbuild/MSBuild.exe" /m /t:Clean ua_utilities.sln`,
			cmd.String())
		assert.NotContains(t, cmd.String(), "/p:Configuration=")
	})
}

func TestCommandLine(t *testing.T) {
	line := CommandLine(`C:\Program Files (x86)\NuGet\nuget.exe`, "install", "-OutputDirectory", "packages")
	assert.Equal(t, `"C:\Program Files (x86)\NuGet\nuget.exe" install -OutputDirectory packages`, line)
}
