package set

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/printer"
	"github.com/benjaminabbitt/versionator/internal/semver"
)

// Run returns the "set" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set an explicit version",
		UsageText: "versionator set <version>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument")
			}

			ver, err := semver.ParseVersion(cmd.Args().First())
			if err != nil {
				return err
			}

			if err := a.Versions.Save(ctx, a.Config.Path, ver); err != nil {
				return fmt.Errorf("failed to write version file %q: %w", a.Config.Path, err)
			}

			printer.PrintSuccess(fmt.Sprintf("Version set to %s", ver))
			return nil
		},
	}
}
