package emitcmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/emit"
	"github.com/benjaminabbitt/versionator/internal/printer"
	"github.com/benjaminabbitt/versionator/internal/vcs"
)

// Run returns the "emit" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Generate a version artifact for a target language",
		UsageText: "versionator emit --format <format> [--output path] [--package name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: fmt.Sprintf("Artifact format: %s", strings.Join(emit.SupportedFormats(), ", ")),
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output path (default depends on format)",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "Package name for Go artifacts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runEmitCmd(ctx, cmd, a)
		},
	}
}

func runEmitCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	format := cmd.String("format")
	if format == "" {
		format = a.Config.Emit.Format
	}
	if !emit.IsValidFormat(format) {
		return fmt.Errorf("unsupported emit format: %q (supported: %s)", format, strings.Join(emit.SupportedFormats(), ", "))
	}

	ver, err := a.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	var info *vcs.Info
	if a.VCS.IsRepository() {
		if head, err := a.VCS.Head(); err == nil {
			info = head
		}
	}

	output := cmd.String("output")
	if output == "" {
		output = a.Config.Emit.Output
	}

	data := emit.NewTemplateData(ver, info, cmd.String("package"))
	path, err := emit.NewEmitter(a.FS).Emit(ctx, emit.Format(format), data, output)
	if err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Wrote %s (%s)", path, ver))
	return nil
}
