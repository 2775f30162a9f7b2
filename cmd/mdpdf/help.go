package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the markdown to PDF converter over HTTP.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default :8080)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --fonts-dir <path>    Directory with the Barlow and Fira Code files")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "      --version             Show version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPDF_ADDR       Listen address")
	fmt.Fprintln(w, "  MDPDF_CONFIG     Config file name or path")
	fmt.Fprintln(w, "  MDPDF_FONTS_DIR  Font directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags override environment variables, which override the config file.")
}
