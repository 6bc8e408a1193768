package sync

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/manifest"
	"github.com/benjaminabbitt/versionator/internal/printer"
)

// Run returns the "sync" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Write the current version into configured manifest files",
		UsageText: "versionator sync [--dry-run]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report what would change without writing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSyncCmd(ctx, cmd, a)
		},
	}
}

func runSyncCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	if len(a.Config.Sources) == 0 {
		printer.PrintWarning("No sources configured; nothing to sync")
		return nil
	}

	ver, err := a.CurrentVersion(ctx)
	if err != nil {
		return err
	}
	version := ver.String()
	dryRun := cmd.Bool("dry-run")

	var failed int
	for _, src := range a.Config.Sources {
		cfg := manifest.FileConfig{
			Path:  src.Path,
			Kind:  manifest.SourceKind(src.Kind),
			Field: src.Field,
		}

		if dryRun {
			current, readErr := a.Reader.ReadVersion(ctx, cfg)
			switch {
			case readErr != nil:
				printer.PrintWarning(fmt.Sprintf("%s: %v", src.Path, readErr))
			case current == version:
				printer.PrintFaint(fmt.Sprintf("%s: already %s", src.Path, version))
			default:
				printer.PrintInfo(fmt.Sprintf("%s: %s -> %s", src.Path, current, version))
			}
			continue
		}

		if err := a.Writer.Write(ctx, cfg, version); err != nil {
			printer.PrintError(fmt.Sprintf("%s: %v", src.Path, err))
			failed++
			continue
		}
		printer.PrintSuccess(fmt.Sprintf("%s: set to %s", src.Path, version))
	}

	if failed > 0 {
		return fmt.Errorf("failed to sync %d of %d sources", failed, len(a.Config.Sources))
	}
	return nil
}
