package main

import (
	"os"

	"github.com/tlevesque/amfprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
