package main

import (
	"os"

	"github.com/idilsaglam/stockpile/internal/cli"
)

func main() {
	// Flags, subcommands and exit codes live in the CLI package.
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
