// Package tasks implements the build, restore, test and application
// lifecycle tasks for the ua_utilities solution. Every task is a short
// sequence of external tool invocations (MSBuild, NuGet, the NUnit
// console runner, the start/stop scripts) or directory deletions.
package tasks

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/uacl/build-tools/pkg/config"
)

// Orchestrator runs the named tasks against one solution tree. All
// execution is synchronous; two orchestrators must never operate on the
// same tree at the same time.
type Orchestrator struct {
	cfg     *config.Config
	proc    ProcessRunner
	scripts ScriptRunner
	dryRun  bool
}

// New returns an orchestrator for the given configuration. With dryRun
// set, every task only logs the external commands it would run.
func New(cfg *config.Config, dryRun bool) *Orchestrator {
	return &Orchestrator{
		cfg:     cfg,
		proc:    execRunner{},
		scripts: shellScriptRunner{},
		dryRun:  dryRun,
	}
}

func (o *Orchestrator) run(ctx context.Context, exe string, args ...string) error {
	log(ctx).Info().Bool("command", true).Msg(CommandLine(exe, args...))
	if o.dryRun {
		return nil
	}

	return o.proc.RunProcess(ctx, exe, args...)
}

func (o *Orchestrator) runScript(ctx context.Context, script string, args ...string) error {
	log(ctx).Info().Bool("command", true).Msg(CommandLine(script, args...))
	if o.dryRun {
		return nil
	}

	return o.scripts.RunScript(ctx, script, args...)
}

// Start launches all configured applications.
func (o *Orchestrator) Start(ctx context.Context) error {
	return o.runScript(ctx, o.cfg.Scripts.Start)
}

// StartApp launches a single application by name.
func (o *Orchestrator) StartApp(ctx context.Context, app string) error {
	return o.runScript(ctx, o.cfg.Scripts.StartApp, app)
}

// Stop shuts down all running applications.
func (o *Orchestrator) Stop(ctx context.Context) error {
	return o.runScript(ctx, o.cfg.Scripts.Stop)
}

// Build compiles the solution in the Debug configuration.
func (o *Orchestrator) Build(ctx context.Context) error {
	return o.msbuild(ctx, "Build", "Debug")
}

// Release compiles the solution in the Release configuration.
func (o *Orchestrator) Release(ctx context.Context) error {
	return o.msbuild(ctx, "Build", "Release")
}

func (o *Orchestrator) msbuild(ctx context.Context, target, configuration string) error {
	cmd := MSBuildCommand(o.cfg.MSBuild(), o.cfg.Solution, target, configuration)
	return o.run(ctx, cmd.Executable, cmd.Args...)
}

// Clean runs the MSBuild Clean target and then removes the obj and bin
// directories of every project. Directories that are already gone or
// can't be removed are skipped; the next build recreates them anyway.
func (o *Orchestrator) Clean(ctx context.Context) error {
	err := o.msbuild(ctx, "Clean", "")
	if err != nil {
		return err
	}

	for _, project := range o.cfg.Projects() {
		for _, sub := range []string{"obj", "bin"} {
			dir := filepath.Join(project, sub)
			if o.dryRun {
				log(ctx).Info().Msgf("would remove %s", dir)
				continue
			}

			err := os.RemoveAll(dir)
			if err != nil {
				log(ctx).Debug().Err(err).Msgf("Could not remove %s", dir)
			}
		}
	}

	return nil
}

// UpdatePackages restores the NuGet packages of every project from its
// packages.config manifest. The loop stops at the first failing
// project.
func (o *Orchestrator) UpdatePackages(ctx context.Context) error {
	for _, project := range o.cfg.Projects() {
		manifest := filepath.Join(project, "packages.config")
		err := o.run(ctx, o.cfg.NuGet(), "install", "-OutputDirectory", "packages", manifest)
		if err != nil {
			return eris.Wrapf(err, "Failed to restore packages for %s", project)
		}
	}

	return nil
}

// Rebuild runs clean, package restore and a Debug build in that order,
// stopping at the first failure.
func (o *Orchestrator) Rebuild(ctx context.Context) error {
	err := o.Clean(ctx)
	if err != nil {
		return err
	}

	err = o.UpdatePackages(ctx)
	if err != nil {
		return err
	}

	return o.Build(ctx)
}

// Restart stops the running applications, rebuilds the solution and
// starts them again.
func (o *Orchestrator) Restart(ctx context.Context) error {
	err := o.Stop(ctx)
	if err != nil {
		return err
	}

	err = o.Rebuild(ctx)
	if err != nil {
		return err
	}

	return o.Start(ctx)
}
