// Package config holds the tool paths and project lists for the
// ua_utilities solution.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DefaultOverridePath is checked for a local override file when neither
// the --config flag nor UATOOL_CONFIG point anywhere else.
const DefaultOverridePath = "uatool_local.yml"

// ScriptPaths locates the application lifecycle scripts, relative to the
// solution root.
type ScriptPaths struct {
	Start    string `yaml:"start"`
	StartApp string `yaml:"startApp"`
	Stop     string `yaml:"stop"`
}

// Config is the effective tool configuration. It is built once at
// startup and never modified afterwards.
type Config struct {
	// Directories that contain the external tool executables.
	MSBuildPath string `yaml:"msbuildPath"`
	NuGetPath   string `yaml:"nugetPath"`
	NUnitPath   string `yaml:"nunitPath"`

	Solution     string   `yaml:"solution"`
	ImplProjects []string `yaml:"implProjects"`
	TestProjects []string `yaml:"testProjects"`

	// ServerApp is the application the test task boots before running
	// the test assemblies.
	ServerApp string      `yaml:"serverApp"`
	Scripts   ScriptPaths `yaml:"scripts"`
}

// Defaults returns the configuration for a stock checkout: the tool
// locations mirror the Windows installers the solution was developed
// against and the project lists cover every project in ua_utilities.sln.
func Defaults() *Config {
	return &Config{
		MSBuildPath: `C:\Program Files (x86)\MSBuild\14.0\Bin`,
		NuGetPath:   `C:\Program Files (x86)\NuGet`,
		NUnitPath:   `C:\Program Files (x86)\NUnit.org\nunit-console`,
		Solution:    "ua_utilities",
		ImplProjects: []string{
			"MultiClientConsole", "ServerConsole", "OfficeConsole",
			"UaclServer", "UaclClient", "UaclUtils",
		},
		TestProjects: []string{
			"TestServerConsole", "TestOfficeConsole",
			"TestUaclClient", "TestUaclUtils",
		},
		ServerApp: "ServerConsole",
		Scripts: ScriptPaths{
			Start:    filepath.Join("tools", "start.sh"),
			StartApp: filepath.Join("tools", "start_application.sh"),
			Stop:     filepath.Join("tools", "stop.sh"),
		},
	}
}

// Load builds the effective configuration: the defaults overlaid with
// whatever the override file at path provides. A missing file is not an
// error, the defaults are used as-is. A file that exists but doesn't
// parse is fatal.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if eris.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, eris.Wrapf(err, "Could not open file %s.", path)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to parse %s.", path)
	}

	return cfg, nil
}

// Projects returns the combined project list, implementation projects
// first. Iteration order matters for restore and clean.
func (c *Config) Projects() []string {
	result := make([]string, 0, len(c.ImplProjects)+len(c.TestProjects))
	result = append(result, c.ImplProjects...)
	return append(result, c.TestProjects...)
}

// MSBuild returns the path to the MSBuild executable.
func (c *Config) MSBuild() string {
	return filepath.Join(c.MSBuildPath, "MSBuild.exe")
}

// NuGet returns the path to the NuGet executable.
func (c *Config) NuGet() string {
	return filepath.Join(c.NuGetPath, "nuget.exe")
}

// NUnit returns the path to the NUnit console runner.
func (c *Config) NUnit() string {
	return filepath.Join(c.NUnitPath, "nunit3-console.exe")
}
