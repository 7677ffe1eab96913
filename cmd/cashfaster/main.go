package main

import (
	"os"

	"github.com/rijuma15/cash-faster/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
