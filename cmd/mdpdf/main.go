package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain is the testable entry point. It returns the process exit
// code instead of calling os.Exit.
func runMain(args []string, env *Environment) int {
	flags, err := parseFlags(args)
	if err != nil {
		// pflag already printed the problem and the usage text.
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	}

	// Align GOMAXPROCS with container CPU quotas. Error ignored:
	// maxprocs.Set only fails if the GOMAXPROCS env is invalid, in
	// which case Go runtime defaults apply and the program continues.
	if flags.quiet {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runServe(ctx, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
