package manifest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/benjaminabbitt/versionator/internal/core"
)

func TestWriter_Write_Assignment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		version string
		want    string
	}{
		{
			name:    "double quoted",
			content: "setup(\n    version=\"1.0.0\",\n)\n",
			version: "2.0.0",
			want:    "setup(\n    version=\"2.0.0\",\n)\n",
		},
		{
			name:    "single quoted keeps quote style",
			content: "setup(version='1.0.0')\n",
			version: "1.0.1",
			want:    "setup(version='1.0.1')\n",
		},
		{
			name:    "only first assignment is touched",
			content: "version = \"1.0.0\"\nversion = \"9.9.9\"\n",
			version: "2.0.0",
			want:    "version = \"2.0.0\"\nversion = \"9.9.9\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("/proj/setup.py", []byte(tt.content))

			writer := NewWriter(fs)
			err := writer.Write(context.Background(), FileConfig{Path: "/proj/setup.py", Kind: KindAssignment}, tt.version)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, _ := fs.GetFile("/proj/setup.py")
			if string(got) != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestWriter_Write_Assignment_NotFound(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/setup.py", []byte("name = \"x\"\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{Path: "/proj/setup.py", Kind: KindAssignment}, "1.0.0")
	if !errors.Is(err, ErrVersionNotFound) {
		t.Fatalf("expected ErrVersionNotFound, got %v", err)
	}
}

func TestWriter_Write_TOML_PreservesDocument(t *testing.T) {
	content := `# build configuration
[build-system]
requires = ["setuptools"]

[project]
name = "mypackage"
version = "1.0.0"
description = "sample"
`
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/pyproject.toml", []byte(content))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{Path: "/proj/pyproject.toml", Kind: KindTOMLTable}, "2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := fs.GetFile("/proj/pyproject.toml")
	text := string(got)
	if !strings.Contains(text, `version = "2.0.0"`) {
		t.Errorf("version not updated:\n%s", text)
	}
	if !strings.Contains(text, "# build configuration") || !strings.Contains(text, `description = "sample"`) {
		t.Errorf("surrounding document not preserved:\n%s", text)
	}
}

func TestWriter_Write_JSON_PreservesKeyOrder(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/package.json", []byte("{\n  \"name\": \"x\",\n  \"version\": \"1.0.0\",\n  \"private\": true\n}\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{Path: "/proj/package.json", Kind: KindJSON}, "2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := fs.GetFile("/proj/package.json")
	text := string(got)
	if !strings.Contains(text, `"version": "2.0.0"`) {
		t.Errorf("version not updated:\n%s", text)
	}
	if strings.Index(text, `"name"`) > strings.Index(text, `"version"`) {
		t.Errorf("key order not preserved:\n%s", text)
	}
}

func TestWriter_Write_YAML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/proj/Chart.yaml", []byte("name: chart\nversion: 1.0.0\n"))

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{Path: "/proj/Chart.yaml", Kind: KindYAML}, "2.0.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := fs.GetFile("/proj/Chart.yaml")
	if !strings.Contains(string(got), "2.0.0") {
		t.Errorf("version not updated:\n%s", got)
	}
}

func TestWriter_Write_Raw(t *testing.T) {
	fs := core.NewMockFileSystem()

	writer := NewWriter(fs)
	err := writer.Write(context.Background(), FileConfig{Path: "/VERSION", Kind: KindRaw}, "1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := fs.GetFile("/VERSION")
	if string(got) != "1.2.3\n" {
		t.Errorf("got %q, want %q", got, "1.2.3\n")
	}
}

func TestWriter_Write_Validation(t *testing.T) {
	writer := NewWriter(core.NewMockFileSystem())

	if err := writer.Write(context.Background(), FileConfig{Kind: KindRaw}, "1.0.0"); err == nil {
		t.Error("expected error for missing path")
	}
	if err := writer.Write(context.Background(), FileConfig{Path: "/x", Kind: SourceKind("ini")}, "1.0.0"); err == nil {
		t.Error("expected error for invalid kind")
	}
}
