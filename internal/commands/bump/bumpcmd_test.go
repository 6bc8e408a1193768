package bump

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/benjaminabbitt/versionator/internal/app"
	"github.com/benjaminabbitt/versionator/internal/config"
	"github.com/benjaminabbitt/versionator/internal/core"
)

func runBump(t *testing.T, fs *core.MockFileSystem, args ...string) error {
	t.Helper()
	a := app.New(fs, config.Default())
	root := &cli.Command{Commands: []*cli.Command{Run(a)}}
	return root.Run(context.Background(), append([]string{"versionator"}, args...))
}

func TestBumpCmd(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"patch", "1.2.4\n"},
		{"minor", "1.3.0\n"},
		{"major", "2.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("VERSION", []byte("1.2.3\n"))

			if err := runBump(t, fs, "bump", tt.level); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, _ := fs.GetFile("VERSION")
			if string(data) != tt.want {
				t.Errorf("VERSION = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestBumpCmd_AutoInitializes(t *testing.T) {
	fs := core.NewMockFileSystem()

	if err := runBump(t, fs, "bump", "patch"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := fs.GetFile("VERSION")
	if string(data) != "0.0.1\n" {
		t.Errorf("VERSION = %q, want %q", data, "0.0.1\n")
	}
}

func TestBumpCmd_Pre(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		label   string
		want    string
	}{
		{"first label", "1.2.3\n", "rc", "1.2.3-rc.1\n"},
		{"increments dot suffix", "1.2.3-rc.1\n", "rc", "1.2.3-rc.2\n"},
		{"keeps dash separator", "1.2.3-rc-1\n", "rc", "1.2.3-rc-2\n"},
		{"label change restarts", "1.2.3-alpha.4\n", "beta", "1.2.3-beta.1\n"},
		{"drops build metadata", "1.2.3+build.9\n", "rc", "1.2.3-rc.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("VERSION", []byte(tt.initial))

			if err := runBump(t, fs, "bump", "pre", tt.label); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, _ := fs.GetFile("VERSION")
			if string(data) != tt.want {
				t.Errorf("VERSION = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestBumpCmd_Pre_MissingLabel(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("VERSION", []byte("1.2.3\n"))

	if err := runBump(t, fs, "bump", "pre"); err == nil {
		t.Fatal("expected error when no label is given")
	}
}

func TestBumpCmd_MalformedVersionFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("VERSION", []byte("not-a-version\n"))

	if err := runBump(t, fs, "bump", "patch"); err == nil {
		t.Fatal("expected error for malformed VERSION file")
	}
}
