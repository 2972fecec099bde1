package main

import (
	"os"

	"github.com/da578/grepline/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
