package main

import (
	"os"

	"github.com/partchat/partchat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
