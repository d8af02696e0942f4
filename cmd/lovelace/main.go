package main

import (
	"os"

	"github.com/msto63/lovelace/cmd/lovelace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
