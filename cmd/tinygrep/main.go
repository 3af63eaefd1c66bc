// Command tinygrep searches text and file names with tinyre patterns.
package main

import (
	"os"

	"github.com/coregx/tinyre/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
