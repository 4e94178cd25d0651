// Package driver runs the linker driver: it resolves the target, adds the
// platform's default arguments and hands everything to the real linker.
package driver

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"lld-standalone/internal/diag"
	"lld-standalone/internal/logger"
	"lld-standalone/internal/options"
	"lld-standalone/internal/triple"
)

// Driver holds what one invocation needs. The zero value is not usable;
// start from New.
type Driver struct {
	Delegate string
	Resolver *triple.Resolver
	Options  *options.Table

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	LookPath func(string) (string, error)
}

// New returns a driver wired to the process's standard streams and search
// path.
func New() *Driver {
	return &Driver{
		Delegate: DelegateName,
		Resolver: triple.NewResolver(),
		Options:  options.Standard,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}

// Run drives one link. argv is the full command line including the program
// name. The result is the exit status for the process: the delegate's own
// status, or 1 when it could not be found or run.
func (d *Driver) Run(argv []string) int {
	report := diag.NewReporter(d.Stderr)

	path, err := findProgram(d.LookPath, d.Delegate)
	if err != nil {
		report.Errorf("%v", err)
		return 1
	}
	logger.LogDelegateFound(d.Delegate, path)

	var argv0 string
	var userArgs []string
	if len(argv) > 0 {
		argv0, userArgs = argv[0], argv[1:]
	}

	parsed := d.Options.Parse(userArgs)
	printTarget := parsed.Has(options.V, options.Version)
	logger.Debug("Options recognized", "inputs", parsed.Inputs(), "printTarget", printTarget)

	target := d.Resolver.Resolve(argv0)

	args, err := Assemble(path, target, userArgs)
	if err != nil {
		report.Errorf("%v", err)
	}
	logger.LogInvocation(args)

	code, err := execute(path, args, stdio{in: d.Stdin, out: d.Stdout, err: d.Stderr})
	if err != nil {
		report.Errorf("%v", err)
		return 1
	}
	logger.LogDelegateExit(path, code)

	if printTarget {
		fmt.Fprintf(d.Stdout, "Target: %s\n", target)
	}
	return code
}
