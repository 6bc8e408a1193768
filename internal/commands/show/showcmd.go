package show

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
)

// Run returns the "show" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the current version",
		UsageText: "versionator show [--bare]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "bare",
				Usage: "Print the version without prefix or VCS suffix",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("bare") {
				ver, err := a.CurrentVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Println(ver.String())
				return nil
			}

			display, err := a.DisplayVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Println(display)
			return nil
		},
	}
}
