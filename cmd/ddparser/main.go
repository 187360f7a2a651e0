package main

import (
	"os"

	"github.com/nothingelsematters7/citibank-gae-drebedengi/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
