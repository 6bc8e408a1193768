package manifest

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// defaultTOMLField is where PEP 621 pyproject.toml files keep the version.
const defaultTOMLField = "project.version"

// assignmentRegex matches a `version = "..."` or `version = '...'`
// assignment. This is deliberately a narrow textual match, not a grammar:
// it is exactly as lenient and as strict as the files it targets need
// (a `version == "x"` comparison does not match, an assignment buried in a
// comment does). Callers rely on that shape, so it must not be generalized.
var assignmentRegex = regexp.MustCompile(`\bversion\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// Extract returns the version string carried by doc.
//
// It is a pure function over the document text: no file I/O, no retained
// state, safe for concurrent use. The returned value is the literal text
// found, trimmed of its quotes only; Extract performs no validation of
// version shape (a value like "not-a-version" comes back verbatim).
//
// Failures are typed: ErrVersionNotFound when a well-formed document lacks
// a version at the expected location, *ParseError when a structured
// document does not parse. Neither is ever defaulted away here; a fallback
// such as "0.0.0" is caller policy.
func Extract(doc SourceDocument) (string, error) {
	if doc.Content == "" {
		return "", fmt.Errorf("document content is empty")
	}
	if !doc.Kind.IsValid() {
		return "", fmt.Errorf("invalid source kind: %q", doc.Kind)
	}

	switch doc.Kind {
	case KindAssignment:
		return extractAssignment(doc.Content)
	case KindTOMLTable:
		return extractTOML(doc.Content, fieldOrDefault(doc.Field, defaultTOMLField))
	case KindJSON:
		return extractJSON(doc.Content, fieldOrDefault(doc.Field, "version"))
	case KindYAML:
		return extractYAML(doc.Content, fieldOrDefault(doc.Field, "version"))
	case KindRaw:
		return strings.TrimSpace(doc.Content), nil
	default:
		return "", fmt.Errorf("unsupported source kind: %q", doc.Kind)
	}
}

func fieldOrDefault(field, def string) string {
	if field != "" {
		return field
	}
	return def
}

// extractAssignment finds the first `version = "..."` assignment in
// document order. Single and double quotes are both accepted; whichever
// appears first wins.
func extractAssignment(content string) (string, error) {
	m := assignmentRegex.FindStringSubmatchIndex(content)
	if m == nil {
		return "", ErrVersionNotFound
	}
	if m[2] >= 0 { // double-quoted literal
		return content[m[2]:m[3]], nil
	}
	return content[m[4]:m[5]], nil
}

// extractTOML parses content as TOML and looks up the version at the
// dot-notation field path.
func extractTOML(content, field string) (string, error) {
	var obj map[string]any
	if err := toml.Unmarshal([]byte(content), &obj); err != nil {
		return "", &ParseError{Kind: KindTOMLTable, Err: err}
	}
	return lookupField(obj, field)
}

// extractJSON parses content as JSON and looks up the version at the
// dot-notation field path.
func extractJSON(content, field string) (string, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return "", &ParseError{Kind: KindJSON, Err: err}
	}
	return lookupField(obj, field)
}

// extractYAML parses content as YAML and looks up the version at the
// dot-notation field path.
func extractYAML(content, field string) (string, error) {
	var obj map[string]any
	if err := yaml.Unmarshal([]byte(content), &obj); err != nil {
		return "", &ParseError{Kind: KindYAML, Err: err}
	}
	return lookupField(obj, field)
}

// lookupField retrieves a string value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"].
func lookupField(obj map[string]any, field string) (string, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for _, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return "", ErrVersionNotFound
		}
		value, exists := currentMap[part]
		if !exists {
			return "", ErrVersionNotFound
		}
		current = value
	}

	version, ok := current.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", field)
	}
	return version, nil
}
