package config

import (
	"context"
	"strings"
	"testing"

	"github.com/benjaminabbitt/versionator/internal/core"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(context.Background(), core.NewMockFileSystem(), ConfigFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "VERSION" {
		t.Errorf("Path = %q, want VERSION", cfg.Path)
	}
	if cfg.Prefix != "v" {
		t.Errorf("Prefix = %q, want v", cfg.Prefix)
	}
	if cfg.Suffix.Enabled {
		t.Error("suffix should default to disabled")
	}
	if cfg.Suffix.Git.HashLength != 7 {
		t.Errorf("HashLength = %d, want 7", cfg.Suffix.Git.HashLength)
	}
}

func TestLoad(t *testing.T) {
	content := `path: VERSION
prefix: ""
suffix:
  enabled: true
  git:
    hashLength: 12
sources:
  - path: setup.py
    kind: assignment
  - path: pyproject.toml
    kind: toml-table
    field: project.version
`
	fs := core.NewMockFileSystem()
	fs.SetFile(ConfigFile, []byte(content))

	cfg, err := Load(context.Background(), fs, ConfigFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Suffix.Enabled {
		t.Error("suffix should be enabled")
	}
	if cfg.Suffix.Git.HashLength != 12 {
		t.Errorf("HashLength = %d, want 12", cfg.Suffix.Git.HashLength)
	}
	if len(cfg.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(cfg.Sources))
	}
	if cfg.Sources[1].Field != "project.version" {
		t.Errorf("Field = %q, want project.version", cfg.Sources[1].Field)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile(ConfigFile, []byte("path: [unclosed\n"))

	if _, err := Load(context.Background(), fs, ConfigFile); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoad_BackfillsZeroValues(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile(ConfigFile, []byte("prefix: \"\"\n"))

	cfg, err := Load(context.Background(), fs, ConfigFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Path != "VERSION" {
		t.Errorf("Path = %q, want VERSION", cfg.Path)
	}
	if cfg.Suffix.Git.HashLength != 7 {
		t.Errorf("HashLength = %d, want 7", cfg.Suffix.Git.HashLength)
	}
}

func TestSave(t *testing.T) {
	fs := core.NewMockFileSystem()
	cfg := Default()
	cfg.Sources = []SourceConfig{{Path: "setup.py", Kind: "assignment"}}

	if err := Save(context.Background(), fs, ConfigFile, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, ok := fs.GetFile(ConfigFile)
	if !ok {
		t.Fatal("config file was not written")
	}
	text := string(data)
	if !strings.HasPrefix(text, "# Versionator configuration\n") {
		t.Errorf("missing comment header:\n%s", text)
	}
	if !strings.Contains(text, "setup.py") {
		t.Errorf("sources not serialized:\n%s", text)
	}

	// A saved config must load back.
	loaded, err := Load(context.Background(), fs, ConfigFile)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if len(loaded.Sources) != 1 || loaded.Sources[0].Path != "setup.py" {
		t.Errorf("round trip lost sources: %+v", loaded.Sources)
	}
}
