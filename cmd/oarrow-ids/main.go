package main

import (
	"fmt"
	"io"
	"os"

	"github.com/provide-io/oarrow/go/oarrow/internal/buildinfo"
)

const version = "0.1.0"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "oarrow-ids %s\n", version)
	fmt.Fprintf(w, "Built: %s\n", buildinfo.Timestamp())
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
