package manifest

import (
	"context"
	"fmt"

	"github.com/benjaminabbitt/versionator/internal/core"
)

// Reader reads versions from files on a FileSystem. The actual extraction
// is delegated to Extract, so the parsing logic stays filesystem-free.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fsys core.FileSystem) *Reader {
	return &Reader{fs: fsys}
}

// Read reads a version from a file based on the provided configuration.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if !cfg.Kind.IsValid() {
		return nil, fmt.Errorf("invalid source kind: %q", cfg.Kind)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	version, err := Extract(SourceDocument{
		Content: string(data),
		Kind:    cfg.Kind,
		Field:   cfg.Field,
	})
	if err != nil {
		return nil, fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	return &Result{
		Version: version,
		Path:    cfg.Path,
		Kind:    cfg.Kind,
		Field:   cfg.Field,
	}, nil
}

// ReadVersion is a convenience method that returns just the version string.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}
