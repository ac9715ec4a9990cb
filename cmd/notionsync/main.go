package main

import (
	"os"

	"github.com/avitalloeb-maker/notion-job-sync/cmd/notionsync/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
