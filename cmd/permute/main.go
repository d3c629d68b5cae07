package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(version)); err != nil {
		os.Exit(1)
	}
}
