package main

import (
	"os"

	"github.com/marcodamonte/basics/cmd/basics/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
