// Command vgrid shows collections of cards in a virtualized terminal grid.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/vgrid/internal/cli"
	"github.com/rshade/vgrid/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	root.SilenceErrors = true
	return root.Execute()
}
