// Package app wires the filesystem, configuration, version file, and VCS
// together behind the small surface the commands need.
package app

import (
	"context"
	"fmt"

	"github.com/benjaminabbitt/versionator/internal/config"
	"github.com/benjaminabbitt/versionator/internal/core"
	"github.com/benjaminabbitt/versionator/internal/manifest"
	"github.com/benjaminabbitt/versionator/internal/semver"
	"github.com/benjaminabbitt/versionator/internal/vcs"
	"github.com/benjaminabbitt/versionator/internal/vcs/git"
)

// App holds application dependencies.
type App struct {
	FS       core.FileSystem
	Config   *config.Config
	Versions *semver.VersionManager
	Reader   *manifest.Reader
	Writer   *manifest.Writer
	VCS      vcs.System
}

// New creates an App over the given filesystem and configuration, with the
// VCS rooted at the working directory.
func New(fsys core.FileSystem, cfg *config.Config) *App {
	return &App{
		FS:       fsys,
		Config:   cfg,
		Versions: semver.NewVersionManager(fsys),
		Reader:   manifest.NewReader(fsys),
		Writer:   manifest.NewWriter(fsys),
		VCS:      git.New("."),
	}
}

// CurrentVersion reads the version from the configured VERSION file.
func (a *App) CurrentVersion(ctx context.Context) (semver.SemVersion, error) {
	return a.Versions.Read(ctx, a.Config.Path)
}

// DisplayVersion returns the current version as shown to users: configured
// prefix, version, and the git hash suffix when the suffix is enabled and
// a repository is present.
func (a *App) DisplayVersion(ctx context.Context) (string, error) {
	ver, err := a.CurrentVersion(ctx)
	if err != nil {
		return "", err
	}

	display := a.Config.Prefix + ver.String()

	if a.Config.Suffix.Enabled && a.VCS.IsRepository() {
		info, err := a.VCS.Head()
		if err != nil {
			return "", fmt.Errorf("failed to read VCS metadata: %w", err)
		}
		display += "+" + info.ShortHash(a.Config.Suffix.Git.HashLength)
	}

	return display, nil
}
