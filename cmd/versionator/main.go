package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/cli"
	"github.com/benjaminabbitt/versionator/internal/config"
	"github.com/benjaminabbitt/versionator/internal/core"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCLI loads configuration, wires the application, and runs the root
// command. Split from main so tests can drive it.
func runCLI(args []string) error {
	ctx := context.Background()

	fsys := core.NewOSFileSystem()
	cfg, err := config.Load(ctx, fsys, config.ConfigFile)
	if err != nil {
		return err
	}

	a := app.New(fsys, cfg)
	return cli.New(a).Run(ctx, args)
}
