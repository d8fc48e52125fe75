package main

import (
	"os"

	"github.com/rushil/prepd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
