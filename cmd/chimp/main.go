package main

import (
	"os"

	"chimp/cmd/chimp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
