package template

import "os/exec"

// CommandRunner executes a shell command string in a working directory.
// The materializer takes it as an injected capability so tests can swap in
// a recorder instead of a real shell.
type CommandRunner interface {
	Run(dir, command string) error
}

// ShellRunner runs commands through `sh -c`.
type ShellRunner struct{}

func (ShellRunner) Run(dir, command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	return cmd.Run()
}
