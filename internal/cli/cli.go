package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/buildinfo"
	"github.com/benjaminabbitt/versionator/internal/commands/bump"
	"github.com/benjaminabbitt/versionator/internal/commands/discover"
	"github.com/benjaminabbitt/versionator/internal/commands/emitcmd"
	"github.com/benjaminabbitt/versionator/internal/commands/extract"
	"github.com/benjaminabbitt/versionator/internal/commands/initialize"
	"github.com/benjaminabbitt/versionator/internal/commands/set"
	"github.com/benjaminabbitt/versionator/internal/commands/show"
	"github.com/benjaminabbitt/versionator/internal/commands/sync"
	"github.com/benjaminabbitt/versionator/internal/commands/tag"
	"github.com/benjaminabbitt/versionator/internal/config"
	"github.com/benjaminabbitt/versionator/internal/printer"
)

var (
	noColorFlag bool
	configFlag  string
)

// New builds and returns the root CLI command, configuring all subcommands
// and flags for the versionator cli.
func New(a *app.App) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "versionator",
		Version:               fmt.Sprintf("v%s", buildinfo.Version()),
		Usage:                 "Version stamping and injection for project manifests",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Usage:       "Path to the configuration file",
				Destination: &configFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			if configFlag != "" {
				cfg, err := config.Load(ctx, a.FS, configFlag)
				if err != nil {
					return ctx, err
				}
				*a.Config = *cfg
			}
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(a),
			show.Run(a),
			extract.Run(a),
			set.Run(a),
			bump.Run(a),
			sync.Run(a),
			emitcmd.Run(a),
			discover.Run(a),
			tag.Run(a),
		},
	}
}
