package main

import (
	"os"

	"github.com/msto63/molecule/cmd/molecule/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
