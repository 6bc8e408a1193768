package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/manifest"
)

// Run returns the "extract" command.
func Run(a *app.App) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract a version from a manifest file",
		UsageText: "versionator extract --kind <kind> [--field path] [--fallback version] <file|->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Usage:    "Source kind: assignment, toml-table, json, yaml, raw",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "Dot-notation field path for structured kinds (default depends on kind)",
			},
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "Version to print when no version is found (instead of failing)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runExtractCmd(ctx, cmd, a)
		},
	}
}

func runExtractCmd(ctx context.Context, cmd *cli.Command, a *app.App) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file argument (or \"-\" for stdin)")
	}

	kind := manifest.SourceKind(cmd.String("kind"))
	if !kind.IsValid() {
		return fmt.Errorf("invalid source kind: %q", cmd.String("kind"))
	}

	target := cmd.Args().First()

	var version string
	var err error
	if target == "-" {
		var content []byte
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		version, err = manifest.Extract(manifest.SourceDocument{
			Content: string(content),
			Kind:    kind,
			Field:   cmd.String("field"),
		})
	} else {
		version, err = a.Reader.ReadVersion(ctx, manifest.FileConfig{
			Path:  target,
			Kind:  kind,
			Field: cmd.String("field"),
		})
	}

	if err != nil {
		// The fallback is caller policy: only a missing version is
		// defaulted, a malformed document still fails.
		if fallback := cmd.String("fallback"); fallback != "" && errors.Is(err, manifest.ErrVersionNotFound) {
			fmt.Println(fallback)
			return nil
		}
		return err
	}

	fmt.Println(version)
	return nil
}
