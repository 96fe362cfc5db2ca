package main

import (
	"os"

	"github.com/cwbudde/algo-complex/cmd/complexcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
