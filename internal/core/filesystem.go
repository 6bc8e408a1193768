// Package core provides shared abstractions used across the application,
// most importantly the FileSystem interface that lets commands run against
// the real OS or an in-memory mock.
package core

import (
	"context"
	"io/fs"
	"os"
)

const (
	// PermOwnerRW is the default permission for generated files.
	PermOwnerRW fs.FileMode = 0644
	// PermOwnerRWX is the default permission for created directories.
	PermOwnerRWX fs.FileMode = 0755
)

// FileSystem abstracts file operations so they can be mocked in tests.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	MkdirAll(ctx context.Context, path string, perm fs.FileMode) error
	ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem using the local disk.
type OSFileSystem struct{}

// NewOSFileSystem returns a FileSystem backed by the OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (o *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (o *OSFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (o *OSFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (o *OSFileSystem) MkdirAll(ctx context.Context, path string, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

func (o *OSFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}
