package semver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/benjaminabbitt/versionator/internal/core"
)

// DefaultVersionFile is the file holding the project's authoritative version.
const DefaultVersionFile = "VERSION"

// VersionManager reads and writes the VERSION file through a FileSystem.
type VersionManager struct {
	fs core.FileSystem
}

// NewVersionManager creates a VersionManager with the given filesystem.
func NewVersionManager(fsys core.FileSystem) *VersionManager {
	return &VersionManager{fs: fsys}
}

// Read returns the version stored at path. A missing or empty file is
// initialized to 0.0.0 and that version is returned, so first use needs no
// separate init step. Malformed contents are an error, never defaulted.
func (m *VersionManager) Read(ctx context.Context, path string) (SemVersion, error) {
	data, err := m.fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			initial := SemVersion{}
			if err := m.Save(ctx, path, initial); err != nil {
				return SemVersion{}, fmt.Errorf("failed to create version file %q: %w", path, err)
			}
			return initial, nil
		}
		return SemVersion{}, fmt.Errorf("failed to read version file %q: %w", path, err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return SemVersion{}, nil
	}

	ver, err := ParseVersion(raw)
	if err != nil {
		return SemVersion{}, fmt.Errorf("version file %q: %w", path, err)
	}
	return ver, nil
}

// Save writes the version to path with a trailing newline.
func (m *VersionManager) Save(ctx context.Context, path string, ver SemVersion) error {
	return m.fs.WriteFile(ctx, path, []byte(ver.String()+"\n"), core.PermOwnerRW)
}

// Bump reads the version at path, bumps the given level, and writes the
// result back. It returns the old and new versions.
func (m *VersionManager) Bump(ctx context.Context, path string, level Level) (old, bumped SemVersion, err error) {
	old, err = m.Read(ctx, path)
	if err != nil {
		return SemVersion{}, SemVersion{}, err
	}

	bumped, err = old.Bump(level)
	if err != nil {
		return SemVersion{}, SemVersion{}, err
	}

	if err := m.Save(ctx, path, bumped); err != nil {
		return SemVersion{}, SemVersion{}, fmt.Errorf("failed to write version file %q: %w", path, err)
	}
	return old, bumped, nil
}
