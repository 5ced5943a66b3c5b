package main

import (
	"os"

	"github.com/vaultpass/pwgen-go/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}
