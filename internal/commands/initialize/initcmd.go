package initialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/config"
	"github.com/benjaminabbitt/versionator/internal/printer"
	"github.com/benjaminabbitt/versionator/internal/semver"
	"github.com/benjaminabbitt/versionator/internal/tui"
)

// Run returns the "init" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create the VERSION file and default configuration",
		UsageText: "versionator init [--version x.y.z] [--force]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "Initial version",
				Value: "0.0.0",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing VERSION file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, a)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	cfg := config.Default()
	initial := cmd.String("version")

	if _, err := a.FS.Stat(ctx, cfg.Path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.Path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	// Prompt for defaults only when a human is on the other end and none
	// were given explicitly.
	if tui.IsInteractive() && !cmd.IsSet("version") {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Initial version").
					Value(&initial).
					Validate(func(s string) error {
						_, err := semver.ParseVersion(s)
						return err
					}),
				huh.NewInput().
					Title("Display prefix").
					Description("Prepended when showing the version (e.g. \"v\")").
					Value(&cfg.Prefix),
				huh.NewConfirm().
					Title("Append git hash suffix to displayed versions?").
					Value(&cfg.Suffix.Enabled),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("init prompt aborted: %w", err)
		}
	}

	ver, err := semver.ParseVersion(initial)
	if err != nil {
		return err
	}

	if err := a.Versions.Save(ctx, cfg.Path, ver); err != nil {
		return fmt.Errorf("failed to write version file %q: %w", cfg.Path, err)
	}
	if err := config.Save(ctx, a.FS, config.ConfigFile, cfg); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Initialized %s with version %s", cfg.Path, ver))
	printer.PrintFaint(fmt.Sprintf("Wrote %s", config.ConfigFile))
	return nil
}
