package driver

import (
	"errors"
	"io"
	"os/exec"
)

// DelegateName is the linker the driver hands off to. It can be changed at
// build time with -ldflags "-X lld-standalone/internal/driver.DelegateName=...".
var DelegateName = "ld.lld"

type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func findProgram(lookPath func(string) (string, error), name string) (string, error) {
	path, err := lookPath(name)
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			err = execErr.Err
		}
		return "", &LookupError{Name: name, Err: err}
	}
	return path, nil
}

// execute runs path with argv (argv[0] included) and waits for it. The
// returned code is the child's exit status; err is set only when the
// child could not be started or did not exit on its own.
func execute(path string, argv []string, std stdio) (int, error) {
	command := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  std.in,
		Stdout: std.out,
		Stderr: std.err,
	}
	err := command.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return -1, &SpawnError{Path: path, Signal: signalName(exitErr.ProcessState), Err: err}
	}
	return -1, &SpawnError{Path: path, Err: err}
}
