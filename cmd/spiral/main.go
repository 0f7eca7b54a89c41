package main

import (
	"os"

	"spiral/cmd/spiral/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
