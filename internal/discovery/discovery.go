// Package discovery scans a project tree for files that carry a version
// and reports how they relate to the authoritative VERSION file.
package discovery

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/benjaminabbitt/versionator/internal/core"
	"github.com/benjaminabbitt/versionator/internal/manifest"
	"github.com/benjaminabbitt/versionator/internal/semver"
)

// knownManifests maps well-known file names to how their version is read.
var knownManifests = map[string]manifest.FileConfig{
	"setup.py":       {Kind: manifest.KindAssignment},
	"build.gradle":   {Kind: manifest.KindAssignment},
	"pyproject.toml": {Kind: manifest.KindTOMLTable, Field: "project.version"},
	"Cargo.toml":     {Kind: manifest.KindTOMLTable, Field: "package.version"},
	"package.json":   {Kind: manifest.KindJSON, Field: "version"},
	"Chart.yaml":     {Kind: manifest.KindYAML, Field: "version"},
	"pubspec.yaml":   {Kind: manifest.KindYAML, Field: "version"},
}

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"target":       true,
	"__pycache__":  true,
	".venv":        true,
}

// DefaultMaxDepth bounds how deep manifest discovery descends.
const DefaultMaxDepth = 3

// Source is one discovered version-carrying file.
type Source struct {
	// RelPath is the path relative to the scanned root.
	RelPath string

	// Kind is how the version was read.
	Kind manifest.SourceKind

	// Field is the field path used for structured kinds.
	Field string

	// Version is the extracted version, empty when extraction failed.
	Version string

	// Err records why extraction failed, nil on success.
	Err error
}

// Mismatch pairs a source with the authoritative version it disagrees with.
type Mismatch struct {
	Source   Source
	Expected string

	// Order is the semantic comparison of the source version against the
	// expected one: -1 behind, +1 ahead, 0 when they compare equal (or
	// either side is not a semantic version).
	Order int
}

// Result is the outcome of a discovery scan.
type Result struct {
	// VersionFileVersion is the VERSION file's content, empty when absent.
	VersionFileVersion string

	// Sources are the discovered manifests, sorted by path.
	Sources []Source

	// Mismatches are sources whose version differs from the VERSION file.
	Mismatches []Mismatch
}

// HasMismatches reports whether any source disagrees with the VERSION file.
func (r *Result) HasMismatches() bool {
	return len(r.Mismatches) > 0
}

// Service provides version source discovery.
type Service struct {
	fs     core.FileSystem
	reader *manifest.Reader
}

// NewService creates a discovery Service.
func NewService(fsys core.FileSystem) *Service {
	return &Service{
		fs:     fsys,
		reader: manifest.NewReader(fsys),
	}
}

// Discover scans root up to maxDepth directory levels. A maxDepth < 0 uses
// DefaultMaxDepth.
func (s *Service) Discover(ctx context.Context, root string, maxDepth int) (*Result, error) {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	result := &Result{}

	// The VERSION file in root is the reference point, when it exists.
	versionPath := filepath.Join(root, semver.DefaultVersionFile)
	if data, err := s.fs.ReadFile(ctx, versionPath); err == nil {
		result.VersionFileVersion = strings.TrimSpace(string(data))
	}

	if err := s.walk(ctx, root, root, 0, maxDepth, result); err != nil {
		return nil, err
	}

	sort.Slice(result.Sources, func(i, j int) bool {
		return result.Sources[i].RelPath < result.Sources[j].RelPath
	})

	if result.VersionFileVersion != "" {
		for _, src := range result.Sources {
			if src.Err == nil && src.Version != result.VersionFileVersion {
				result.Mismatches = append(result.Mismatches, Mismatch{
					Source:   src,
					Expected: result.VersionFileVersion,
					Order:    compareVersions(src.Version, result.VersionFileVersion),
				})
			}
		}
	}

	return result, nil
}

// walk recurses through dir via the FileSystem, so discovery works against
// a MockFileSystem the same way it works against the OS.
func (s *Service) walk(ctx context.Context, root, dir string, depth, maxDepth int, result *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if skipDirs[entry.Name()] || depth+1 >= maxDepth {
				continue
			}
			if err := s.walk(ctx, root, full, depth+1, maxDepth, result); err != nil {
				return err
			}
			continue
		}

		cfg, ok := knownManifests[entry.Name()]
		if !ok {
			continue
		}
		cfg.Path = full

		rel, err := filepath.Rel(root, full)
		if err != nil {
			return err
		}

		source := Source{RelPath: rel, Kind: cfg.Kind, Field: cfg.Field}
		if res, readErr := s.reader.Read(ctx, cfg); readErr != nil {
			source.Err = readErr
		} else {
			source.Version = res.Version
		}
		result.Sources = append(result.Sources, source)
	}

	return nil
}

// compareVersions orders two version strings semantically, returning 0 when
// either does not parse as a semantic version.
func compareVersions(got, expected string) int {
	gv, err := semver.ParseVersion(got)
	if err != nil {
		return 0
	}
	ev, err := semver.ParseVersion(expected)
	if err != nil {
		return 0
	}
	return gv.Compare(ev)
}
