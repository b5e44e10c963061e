package main

import (
	"os"

	"github.com/kherve/classplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
