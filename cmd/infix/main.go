package main

import (
	"os"

	"github.com/xiam/infix/cmd/infix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
