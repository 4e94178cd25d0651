// Command lld-standalone is a linker driver. It works out the target from
// its own program name (aarch64--netbsd-ld.lld links for aarch64 NetBSD),
// adds the arguments that target's platform expects, and runs ld.lld from
// PATH with them followed by the user's arguments.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"lld-standalone/internal/diag"
	"lld-standalone/internal/driver"
	"lld-standalone/internal/logger"
)

func main() {
	os.Exit(execute(driver.New(), os.Args))
}

func execute(d *driver.Driver, argv []string) int {
	if cfg, ok := logger.ConfigFromEnv(os.Getenv); ok {
		if err := logger.Init(cfg); err != nil {
			diag.NewReporter(d.Stderr).Warningf("logging disabled: %v", err)
		}
	}

	var argv0 string
	var args []string
	if len(argv) > 0 {
		argv0, args = argv[0], argv[1:]
	}

	status := 0
	cmd := newRootCommand(argv0, d, &status)
	// "--" keeps cobra from matching a user argument against its hidden
	// completion subcommands.
	cmd.SetArgs(append([]string{"--"}, args...))
	if err := cmd.Execute(); err != nil {
		diag.NewReporter(d.Stderr).Errorf("%v", err)
		return 1
	}
	return status
}

// newRootCommand returns a command that hands every argument, flags
// included, to the driver.
func newRootCommand(argv0 string, d *driver.Driver, status *int) *cobra.Command {
	return &cobra.Command{
		Use:                "lld-standalone [linker options] [files...]",
		Short:              "Run ld.lld with the target platform's default options",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			*status = d.Run(append([]string{argv0}, args...))
		},
	}
}
