package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// serveFlags holds the command line flags.
type serveFlags struct {
	addr     string
	config   string
	fontsDir string
	quiet    bool
	version  bool
}

// parseFlags parses the command line. args must not include the
// program name.
func parseFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("mdpdf", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (host:port)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.fontsDir, "fonts-dir", "", "directory searched for the bundled font files")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
