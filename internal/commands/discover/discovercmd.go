package discover

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/discovery"
	"github.com/benjaminabbitt/versionator/internal/printer"
)

// Run returns the "discover" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "discover",
		Usage:     "Scan the project for files carrying a version",
		UsageText: "versionator discover [--depth n]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "depth",
				Usage: "Maximum directory depth to scan",
				Value: discovery.DefaultMaxDepth,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDiscoverCmd(ctx, cmd, a)
		},
	}
}

func runDiscoverCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	result, err := discovery.NewService(a.FS).Discover(ctx, ".", int(cmd.Int("depth")))
	if err != nil {
		return err
	}

	if result.VersionFileVersion != "" {
		printer.PrintInfo(fmt.Sprintf("VERSION file: %s", result.VersionFileVersion))
	} else {
		printer.PrintFaint("VERSION file: not found")
	}

	if len(result.Sources) == 0 {
		printer.PrintFaint("No version sources found")
		return nil
	}

	for _, src := range result.Sources {
		switch {
		case src.Err != nil:
			printer.PrintWarning(fmt.Sprintf("  %s (%s): %v", src.RelPath, src.Kind, src.Err))
		default:
			fmt.Printf("  %s (%s): %s\n", src.RelPath, src.Kind, src.Version)
		}
	}

	if result.HasMismatches() {
		printer.PrintWarning(fmt.Sprintf("%d source(s) disagree with the VERSION file:", len(result.Mismatches)))
		for _, m := range result.Mismatches {
			var rel string
			switch m.Order {
			case -1:
				rel = " (behind)"
			case 1:
				rel = " (ahead)"
			}
			printer.PrintWarning(fmt.Sprintf("  %s has %s, expected %s%s", m.Source.RelPath, m.Source.Version, m.Expected, rel))
		}
	}

	return nil
}
