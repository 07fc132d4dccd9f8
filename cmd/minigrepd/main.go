package main

import (
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/daemoncli"
)

func main() {
	if err := daemoncli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
