package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rshade/endpointview/internal/cli"
	"github.com/rshade/endpointview/pkg/version"
)

func run(args []string, stderr io.Writer) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
