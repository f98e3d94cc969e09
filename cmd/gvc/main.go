package main

import (
	"os"

	"github.com/kilupskalvis/gvc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
