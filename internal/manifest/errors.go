package manifest

import (
	"errors"
	"fmt"
)

// ErrVersionNotFound is returned when a well-formed document does not
// contain a version at the expected location.
var ErrVersionNotFound = errors.New("version not found")

// ParseError is returned when a document claimed to be structured data is
// not syntactically valid. It wraps the underlying syntax error.
type ParseError struct {
	Kind SourceKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
