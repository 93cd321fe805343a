package main

import (
	"os"

	"github.com/rmera/memplot/cmd/memplot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
