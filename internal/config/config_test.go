package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scriptdeps/scriptdeps/internal/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	data := `
source_dir: src/main/js
bundle: target/app.js
includes:
  - "*.js"
excludes:
  - "*.min.js"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &config.Project{
		SourceDir: "src/main/js",
		Bundle:    "target/app.js",
		Includes:  []string{"*.js"},
		Excludes:  []string{"*.min.js"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config differs from expected (-want, +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	got, err := config.Load(filepath.Join(t.TempDir(), config.DefaultFilename))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Errorf("config differs from default (-want, +got):\n%s", diff)
	}
}

func TestLoadEmptySourceDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	if err := os.WriteFile(path, []byte("bundle: out.js\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.SourceDir != "." {
		t.Errorf("got source_dir %q, want %q", got.SourceDir, ".")
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("got nil error for malformed config, want an error")
	}
}
