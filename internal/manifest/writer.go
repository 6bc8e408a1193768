package manifest

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/sjson"

	"github.com/benjaminabbitt/versionator/internal/core"
)

// Regexes for in-place patching. Replacing text rather than re-marshaling
// keeps comments, key order, and whitespace intact in files the user owns.
var (
	assignmentDoubleRegex = regexp.MustCompile(`(\bversion\s*=\s*)"[^"]*"`)
	assignmentSingleRegex = regexp.MustCompile(`(\bversion\s*=\s*)'[^']*'`)
	tomlDoubleRegex       = regexp.MustCompile(`(?m)^(\s*version\s*=\s*)"[^"]*"`)
	tomlSingleRegex       = regexp.MustCompile(`(?m)^(\s*version\s*=\s*)'[^']*'`)
)

// Writer writes versions into files on a FileSystem, preserving the
// surrounding document where the format allows it.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fsys core.FileSystem) *Writer {
	return &Writer{fs: fsys}
}

// Write writes a version into the file described by cfg.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, version string) error {
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}
	if !cfg.Kind.IsValid() {
		return fmt.Errorf("invalid source kind: %q", cfg.Kind)
	}

	if cfg.Kind == KindRaw {
		return w.writeFile(ctx, cfg.Path, []byte(version+"\n"))
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var updated []byte
	switch cfg.Kind {
	case KindAssignment:
		updated, err = patchAssignment(data, version)
	case KindTOMLTable:
		updated, err = patchTOML(data, version)
	case KindJSON:
		updated, err = patchJSON(data, fieldOrDefault(cfg.Field, "version"), version)
	case KindYAML:
		updated, err = patchYAML(data, fieldOrDefault(cfg.Field, "version"), version)
	default:
		return fmt.Errorf("unsupported source kind: %q", cfg.Kind)
	}
	if err != nil {
		return fmt.Errorf("in file %q: %w", cfg.Path, err)
	}

	return w.writeFile(ctx, cfg.Path, updated)
}

func (w *Writer) writeFile(ctx context.Context, path string, data []byte) error {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if err := w.fs.WriteFile(ctx, path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// patchAssignment replaces the quoted literal of the first matching
// `version = "..."` assignment, keeping the original quote style.
func patchAssignment(data []byte, version string) ([]byte, error) {
	content := string(data)
	dLoc := assignmentDoubleRegex.FindStringIndex(content)
	sLoc := assignmentSingleRegex.FindStringIndex(content)
	switch {
	case dLoc == nil && sLoc == nil:
		return nil, ErrVersionNotFound
	case sLoc == nil || (dLoc != nil && dLoc[0] <= sLoc[0]):
		return []byte(replaceFirst(assignmentDoubleRegex, content, `${1}"`+version+`"`)), nil
	default:
		return []byte(replaceFirst(assignmentSingleRegex, content, `${1}'`+version+`'`)), nil
	}
}

// patchTOML replaces a line-anchored `version = "..."` entry, keeping the
// rest of the document byte-for-byte.
func patchTOML(data []byte, version string) ([]byte, error) {
	content := string(data)
	if tomlDoubleRegex.MatchString(content) {
		return []byte(replaceFirst(tomlDoubleRegex, content, `${1}"`+version+`"`)), nil
	}
	if tomlSingleRegex.MatchString(content) {
		return []byte(replaceFirst(tomlSingleRegex, content, `${1}'`+version+`'`)), nil
	}
	return nil, ErrVersionNotFound
}

// patchJSON updates only the version field, preserving structure and key
// order via sjson.
func patchJSON(data []byte, field, version string) ([]byte, error) {
	updated, err := sjson.SetBytes(data, field, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set field %q: %w", field, err)
	}
	return updated, nil
}

// patchYAML unmarshals, updates the field, and re-marshals the document.
func patchYAML(data []byte, field, version string) ([]byte, error) {
	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return nil, &ParseError{Kind: KindYAML, Err: err}
	}
	if err := setField(obj, field, version); err != nil {
		return nil, err
	}
	updated, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return updated, nil
}

// replaceFirst replaces only the first match of re in content.
func replaceFirst(re *regexp.Regexp, content, replacement string) string {
	replaced := false
	return re.ReplaceAllStringFunc(content, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		return re.ReplaceAllString(match, replacement)
	})
}

// setField sets a value in a nested map using dot notation, creating
// intermediate maps as needed.
func setField(obj map[string]any, field, value string) error {
	parts := strings.Split(field, ".")
	current := obj
	for _, part := range parts[:len(parts)-1] {
		next, exists := current[part]
		if !exists {
			created := make(map[string]any)
			current[part] = created
			current = created
			continue
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object", part)
		}
		current = nextMap
	}
	current[parts[len(parts)-1]] = value
	return nil
}
