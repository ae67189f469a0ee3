package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ADDRESSBOOK_FILE", "")
	t.Setenv("ADDRESSBOOK_DB", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
	if cfg.Pages.Size != 5 {
		t.Fatalf("expected page size 5, got %d", cfg.Pages.Size)
	}
}

func TestLoad_AppliesFileOnTopOfDefaults(t *testing.T) {
	t.Setenv("ADDRESSBOOK_FILE", "")
	t.Setenv("ADDRESSBOOK_DB", "")

	path := writeConfig(t, "storage:\n  backend: sqlite\n  db: /tmp/book.db\npages:\n  size: 3\nlog:\n  level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Fatalf("expected backend=sqlite, got=%s", cfg.Storage.Backend)
	}
	if cfg.Storage.Path() != "/tmp/book.db" {
		t.Fatalf("expected path=/tmp/book.db, got=%s", cfg.Storage.Path())
	}
	if cfg.Storage.File != Default().Storage.File {
		t.Fatalf("expected default file, got=%s", cfg.Storage.File)
	}
	if cfg.Pages.Size != 3 {
		t.Fatalf("expected page size=3, got=%d", cfg.Pages.Size)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDRESSBOOK_FILE", "/env/data.json")
	t.Setenv("ADDRESSBOOK_DB", "/env/data.db")

	path := writeConfig(t, "storage:\n  file: /file/data.json\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Storage.File != "/env/data.json" {
		t.Fatalf("expected env file, got=%s", cfg.Storage.File)
	}
	if cfg.Storage.DB != "/env/data.db" {
		t.Fatalf("expected env db, got=%s", cfg.Storage.DB)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "storage: [",
		"bad backend":   "storage:\n  backend: csv\n",
		"zero pagesize": "pages:\n  size: 0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
