package main

import (
	"os"
	"runtime/debug"

	"github.com/custodia-labs/needle-cli/internal/adapters/driving/cli"
)

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		cli.SetVersion(info.Main.Version)
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
