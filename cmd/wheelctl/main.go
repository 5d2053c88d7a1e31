package main

import (
	"os"

	"github.com/pthm-cable/wheeltab/cmd/wheelctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
