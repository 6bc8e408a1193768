package bump

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/printer"
	"github.com/benjaminabbitt/versionator/internal/semver"
)

// Run returns the "bump" parent command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Bump the version (patch, minor, major, pre)",
		UsageText: "versionator bump <patch|minor|major|pre>",
		Commands: []*cli.Command{
			levelCmd(a, semver.LevelPatch),
			levelCmd(a, semver.LevelMinor),
			levelCmd(a, semver.LevelMajor),
			preCmd(a),
		},
	}
}

// preCmd increments the pre-release label without touching the base
// version: 1.2.3 + "rc" becomes 1.2.3-rc.1, then 1.2.3-rc.2, keeping the
// separator style already in use.
func preCmd(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "pre",
		Usage:     "Increment the pre-release label (e.g. rc -> rc.1 -> rc.2)",
		UsageText: "versionator bump pre <label>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one pre-release label argument")
			}
			label := cmd.Args().First()

			old, err := a.Versions.Read(ctx, a.Config.Path)
			if err != nil {
				return err
			}

			bumped := old
			bumped.PreRelease = semver.IncrementPreRelease(old.PreRelease, label)
			bumped.Build = ""

			if err := a.Versions.Save(ctx, a.Config.Path, bumped); err != nil {
				return fmt.Errorf("failed to write version file %q: %w", a.Config.Path, err)
			}

			printer.PrintSuccess(fmt.Sprintf("Bumped version: %s -> %s", old, bumped))
			return nil
		},
	}
}

func levelCmd(a *app.App, level semver.Level) *cli.Command {
	return &cli.Command{
		Name:  string(level),
		Usage: fmt.Sprintf("Increment the %s version", level),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			old, bumped, err := a.Versions.Bump(ctx, a.Config.Path, level)
			if err != nil {
				return err
			}
			printer.PrintSuccess(fmt.Sprintf("Bumped version: %s -> %s", old, bumped))
			return nil
		},
	}
}
