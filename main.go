package main

import (
	"os"

	"github.com/basixel/basixel/cli"
)

func main() {
	if len(os.Args) > 1 {
		os.Exit(cli.Run(os.Args[1]))
	}
	os.Exit(cli.Interactive())
}
