// Package emit renders generated version artifacts (the _version.py
// equivalents) from embedded templates, so downstream code can import its
// version instead of parsing manifests at runtime.
package emit

import (
	"context"
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/benjaminabbitt/versionator/internal/core"
	"github.com/benjaminabbitt/versionator/internal/semver"
	"github.com/benjaminabbitt/versionator/internal/vcs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format represents a supported artifact format.
type Format string

const (
	FormatPython Format = "python"
	FormatGo     Format = "go"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// templateFiles maps formats to their embedded template files.
var templateFiles = map[Format]string{
	FormatPython: "templates/python.tmpl",
	FormatGo:     "templates/go.tmpl",
	FormatJSON:   "templates/json.tmpl",
	FormatYAML:   "templates/yaml.tmpl",
}

// defaultOutputs maps formats to their conventional output paths.
var defaultOutputs = map[Format]string{
	FormatPython: "_version.py",
	FormatGo:     "version_gen.go",
	FormatJSON:   "version.json",
	FormatYAML:   "version.yaml",
}

// SupportedFormats returns the names of all supported formats, sorted.
func SupportedFormats() []string {
	names := make([]string, 0, len(templateFiles))
	for f := range templateFiles {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// IsValidFormat reports whether name is a supported format.
func IsValidFormat(name string) bool {
	_, ok := templateFiles[Format(name)]
	return ok
}

// DefaultOutput returns the conventional output path for a format.
func DefaultOutput(f Format) string {
	return defaultOutputs[f]
}

// TemplateData holds the values available to artifact templates.
type TemplateData struct {
	Version    string
	Major      int
	Minor      int
	Patch      int
	PreRelease string
	Build      string

	// VersionTuple is the dot-split component view rendered as a Python
	// tuple literal, e.g. "(1, 2, 3)" or "(0, 4, '3-rc', 1)".
	VersionTuple string

	// Go artifacts need a package name.
	PackageName string

	// VCS metadata; empty outside a repository.
	Hash      string
	ShortHash string
	Branch    string
	Dirty     bool
}

// NewTemplateData builds template data from a version and optional VCS info.
func NewTemplateData(ver semver.SemVersion, info *vcs.Info, packageName string) TemplateData {
	data := TemplateData{
		Version:     ver.String(),
		Major:       ver.Major,
		Minor:       ver.Minor,
		Patch:       ver.Patch,
		PreRelease:  ver.PreRelease,
		Build:       ver.Build,
		PackageName: packageName,
	}
	data.VersionTuple = pythonTuple(semver.TupleOf(data.Version))
	if data.PackageName == "" {
		data.PackageName = "main"
	}
	if info != nil {
		data.Hash = info.Hash
		data.ShortHash = info.ShortHash(7)
		data.Branch = info.Branch
		data.Dirty = info.Dirty
	}
	return data
}

// pythonTuple renders a version tuple as a Python tuple literal: numeric
// components bare, textual ones single-quoted.
func pythonTuple(t semver.Tuple) string {
	parts := make([]string, len(t))
	for i, c := range t {
		if c.Numeric {
			parts[i] = c.String()
		} else {
			parts[i] = "'" + c.Text + "'"
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Render renders the artifact for a format without touching the filesystem.
func Render(format Format, data TemplateData) (string, error) {
	name, ok := templateFiles[format]
	if !ok {
		return "", fmt.Errorf("unsupported emit format: %q (supported: %v)", format, SupportedFormats())
	}

	raw, err := templateFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to load template for %q: %w", format, err)
	}

	rendered, err := mustache.Render(string(raw), data)
	if err != nil {
		return "", fmt.Errorf("failed to render %q template: %w", format, err)
	}
	return rendered, nil
}

// Emitter writes rendered artifacts to a filesystem.
type Emitter struct {
	fs core.FileSystem
}

// NewEmitter creates an Emitter with the given filesystem.
func NewEmitter(fsys core.FileSystem) *Emitter {
	return &Emitter{fs: fsys}
}

// Emit renders the artifact and writes it to output. An empty output uses
// the format's conventional path. The written path is returned.
func (e *Emitter) Emit(ctx context.Context, format Format, data TemplateData, output string) (string, error) {
	rendered, err := Render(format, data)
	if err != nil {
		return "", err
	}

	if output == "" {
		output = DefaultOutput(format)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := e.fs.MkdirAll(ctx, dir, core.PermOwnerRWX); err != nil {
			return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}

	if err := e.fs.WriteFile(ctx, output, []byte(rendered), core.PermOwnerRW); err != nil {
		return "", fmt.Errorf("failed to write artifact %q: %w", output, err)
	}
	return output, nil
}
