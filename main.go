package main

import (
	"os"

	"github.com/jobmatch-io/jobmatch-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
