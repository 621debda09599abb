package main

import (
	"os"

	"github.com/notifykit/notifykit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
