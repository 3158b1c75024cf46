package main

import (
	"os"

	"github.com/bazaar-dev/bazaar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
