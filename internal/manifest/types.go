package manifest

// SourceKind identifies the textual shape a version is extracted from.
type SourceKind string

const (
	// KindAssignment is for script-style files containing a
	// `version = "..."` assignment (setup.py, build.gradle, *.gemspec).
	KindAssignment SourceKind = "assignment"

	// KindTOMLTable is for TOML documents carrying the version in a table
	// (pyproject.toml, Cargo.toml).
	KindTOMLTable SourceKind = "toml-table"

	// KindJSON is for JSON manifests (package.json, composer.json).
	KindJSON SourceKind = "json"

	// KindYAML is for YAML manifests (Chart.yaml, pubspec.yaml).
	KindYAML SourceKind = "yaml"

	// KindRaw is for plain text files whose entire content is the version.
	KindRaw SourceKind = "raw"
)

// String returns the string representation of the kind.
func (k SourceKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known valid source kind.
func (k SourceKind) IsValid() bool {
	switch k {
	case KindAssignment, KindTOMLTable, KindJSON, KindYAML, KindRaw:
		return true
	default:
		return false
	}
}

// ParseSourceKind converts a string to a SourceKind, returning KindRaw as
// fallback for unknown values.
func ParseSourceKind(s string) SourceKind {
	k := SourceKind(s)
	if k.IsValid() {
		return k
	}
	return KindRaw
}

// SourceDocument is one version source: raw text plus the kind tag that
// says how to read it. It is consumed by a single Extract call and never
// retained.
type SourceDocument struct {
	// Content is the raw file text.
	Content string

	// Kind specifies how Content is interpreted.
	Kind SourceKind

	// Field is the dot-notation path to the version value for structured
	// kinds. When empty, the kind's conventional default applies
	// (e.g. "project.version" for toml-table).
	Field string
}

// FileConfig describes how to read a version from a specific file.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Kind specifies the source kind.
	Kind SourceKind

	// Field is the dot-notation path to the version field for structured
	// kinds. Example: "version", "project.version", "tool.poetry.version".
	Field string
}

// Result represents a version read from a file.
type Result struct {
	// Version is the extracted version string, exactly as authored.
	Version string

	// Path is the file path that was read.
	Path string

	// Kind is the source kind that was used.
	Kind SourceKind

	// Field is the field path that was used (for structured kinds).
	Field string
}
