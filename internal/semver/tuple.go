package semver

import "strconv"

// Component is one dot-separated segment of a version string. Numeric
// segments carry their integer value; anything else stays textual
// (e.g. the "dev4" in "1.2.3.dev4").
type Component struct {
	Num     int
	Text    string
	Numeric bool
}

// String returns the segment as it appeared in the version string.
func (c Component) String() string {
	if c.Numeric {
		return strconv.Itoa(c.Num)
	}
	return c.Text
}

// Tuple is an ordered view of a version string's dot-separated components.
// It is derived, never authoritative: the canonical form is the string it
// came from.
type Tuple []Component

// TupleOf splits version on "." and coerces numeric segments to integers.
// Deriving a Tuple is a pure function of its input, so repeated calls on the
// same string always yield equal tuples.
func TupleOf(version string) Tuple {
	if version == "" {
		return nil
	}

	var tuple Tuple
	start := 0
	for i := 0; i <= len(version); i++ {
		if i < len(version) && version[i] != '.' {
			continue
		}
		seg := version[start:i]
		start = i + 1
		if n, err := strconv.Atoi(seg); err == nil && seg != "" {
			tuple = append(tuple, Component{Num: n, Numeric: true})
		} else {
			tuple = append(tuple, Component{Text: seg})
		}
	}
	return tuple
}

// Equal reports whether two tuples have identical components.
func (t Tuple) Equal(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}
