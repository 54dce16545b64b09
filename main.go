package main

import (
	"os"

	"github.com/leefowlercu/mdbatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
