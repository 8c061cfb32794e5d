package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/timewheel/internal/cli"
	"github.com/alexanderramin/timewheel/internal/clock"
	"github.com/alexanderramin/timewheel/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config: config.Load(),
		Clock:  clock.Real{},
	}

	// Detect interactive terminal for preview and design.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
