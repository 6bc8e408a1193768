package semver

import (
	"errors"
	"strings"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SemVersion
		wantErr bool
	}{
		{
			name:  "basic",
			input: "1.2.3",
			want:  SemVersion{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "v prefix",
			input: "v1.2.3",
			want:  SemVersion{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "pre-release",
			input: "1.2.3-alpha.1",
			want:  SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "alpha.1"},
		},
		{
			name:  "build metadata",
			input: "1.2.3+build.123",
			want:  SemVersion{Major: 1, Minor: 2, Patch: 3, Build: "build.123"},
		},
		{
			name:  "pre-release and build",
			input: "1.2.3-rc.1+build.456",
			want:  SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "rc.1", Build: "build.456"},
		},
		{
			name:  "surrounding whitespace",
			input: "  1.0.0\n",
			want:  SemVersion{Major: 1},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "two segments", input: "1.2", wantErr: true},
		{name: "non-numeric major", input: "x.2.3", wantErr: true},
		{name: "not a version", input: "not-a-version", wantErr: true},
		{name: "too long", input: strings.Repeat("1", 200) + ".0.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("expected ErrInvalidVersion, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSemVersion_String(t *testing.T) {
	tests := []struct {
		ver  SemVersion
		want string
	}{
		{SemVersion{Major: 1, Minor: 2, Patch: 3}, "1.2.3"},
		{SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "rc.1"}, "1.2.3-rc.1"},
		{SemVersion{Major: 1, Minor: 2, Patch: 3, Build: "abc1234"}, "1.2.3+abc1234"},
		{SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "rc.1", Build: "abc"}, "1.2.3-rc.1+abc"},
		{SemVersion{}, "0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ver.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// Parsing a version's string form must round-trip to the same version.
func TestParseVersion_RoundTrip(t *testing.T) {
	versions := []SemVersion{
		{Major: 1, Minor: 2, Patch: 3},
		{Major: 0, Minor: 1, Patch: 0, PreRelease: "alpha"},
		{Major: 10, Minor: 20, Patch: 30, PreRelease: "rc.2", Build: "build.7"},
	}

	for _, ver := range versions {
		t.Run(ver.String(), func(t *testing.T) {
			parsed, err := ParseVersion(ver.String())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parsed != ver {
				t.Errorf("round trip changed version: %+v -> %+v", ver, parsed)
			}
		})
	}
}

func TestSemVersion_Bump(t *testing.T) {
	base := SemVersion{Major: 1, Minor: 2, Patch: 3, PreRelease: "rc.1", Build: "abc"}

	tests := []struct {
		level Level
		want  SemVersion
	}{
		{LevelPatch, SemVersion{Major: 1, Minor: 2, Patch: 4}},
		{LevelMinor, SemVersion{Major: 1, Minor: 3, Patch: 0}},
		{LevelMajor, SemVersion{Major: 2, Minor: 0, Patch: 0}},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got, err := base.Bump(tt.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := base.Bump(Level("revision")); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestSemVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.1.0", "2.0.9", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0", "1.0.0-alpha", 1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.2", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.1.1", -1},
		{"1.0.0-1", "1.0.0-alpha", -1}, // numeric < non-numeric
		{"1.0.0+a", "1.0.0+b", 0},      // build metadata ignored
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseVersion(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIncrementPreRelease(t *testing.T) {
	tests := []struct {
		current string
		base    string
		want    string
	}{
		{"rc.1", "rc", "rc.2"},
		{"rc-1", "rc", "rc-2"},
		{"rc1", "rc", "rc2"},
		{"rc", "rc", "rc.1"},
		{"", "alpha", "alpha.1"},
		{"beta.3", "alpha", "alpha.1"},
		{"rc.x", "rc", "rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.current+"/"+tt.base, func(t *testing.T) {
			if got := IncrementPreRelease(tt.current, tt.base); got != tt.want {
				t.Errorf("IncrementPreRelease(%q, %q) = %q, want %q", tt.current, tt.base, got, tt.want)
			}
		})
	}
}
