package tag

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/printer"
)

// Run returns the "tag" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Create a VCS tag for the current version",
		UsageText: "versionator tag [--message text] [--prefix p]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   "Tag message (default: \"Release <version>\")",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Tag name prefix",
				Value: "v",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runTagCmd(ctx, cmd, a)
		},
	}
}

func runTagCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	if !a.VCS.IsRepository() {
		return fmt.Errorf("not inside a %s repository", a.VCS.Name())
	}

	info, err := a.VCS.Head()
	if err != nil {
		return fmt.Errorf("failed to read %s metadata: %w", a.VCS.Name(), err)
	}
	if info.Dirty {
		return fmt.Errorf("working directory is not clean; commit or stash your changes first")
	}

	ver, err := a.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	name := cmd.String("prefix") + ver.String()

	exists, err := a.VCS.TagExists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag %q already exists", name)
	}

	message := cmd.String("message")
	if message == "" {
		message = fmt.Sprintf("Release %s", ver)
	}

	if err := a.VCS.CreateTag(name, message); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created tag %s for version %s", name, ver))
	return nil
}
