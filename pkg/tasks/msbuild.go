package tasks

// BuildCommand describes a single MSBuild invocation.
type BuildCommand struct {
	Executable string
	Args       []string
}

// MSBuildCommand assembles the MSBuild invocation for the given target.
// The argument order is fixed: the parallelism switch, the target, the
// optional configuration and finally the solution file.
func MSBuildCommand(exe, solution, target, configuration string) BuildCommand {
	args := []string{"/m", "/t:" + target}
	if configuration != "" {
		args = append(args, "/p:Configuration="+configuration)
	}
	args = append(args, solution+".sln")

	return BuildCommand{Executable: exe, Args: args}
}

func (c BuildCommand) String() string {
	return CommandLine(c.Executable, c.Args...)
}
