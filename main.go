package main

import (
	"os"

	"github.com/mame7743/zen-temple/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
