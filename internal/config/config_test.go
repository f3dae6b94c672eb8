package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/FocuswithJustin/bibleprep/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected no config file in empty directory")
	}
	if filepath.Base(resolved) != config.ProjectFile {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if *cfg != config.Default() {
		t.Fatalf("Load() = %+v, want defaults", *cfg)
	}
	if cfg.Paths.Translation != "public/data/nvi.json" {
		t.Fatalf("unexpected translation default %q", cfg.Paths.Translation)
	}
}

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	data := "[paths]\ntranslation = \"dados/acf.json\"\n\n[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.ProjectFile), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Paths.Translation != "dados/acf.json" {
		t.Fatalf("translation = %q", cfg.Paths.Translation)
	}
	if cfg.Paths.Topics != config.Default().Paths.Topics {
		t.Fatalf("unset keys should keep defaults, topics = %q", cfg.Paths.Topics)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level should be normalized, got %q", cfg.Logging.Level)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := config.Default()
	cfg.Paths.BibleRoot = "out/bible"
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q, exists = %v", resolved, exists)
	}
	if got.Paths.BibleRoot != "out/bible" {
		t.Fatalf("bible_root = %q", got.Paths.BibleRoot)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), "not found"},
		{"directory", dir, "directory"},
		{"malformed", write("bad.toml", "[paths\n"), "parse config"},
		{"unknown key", write("unknown.toml", "[paths]\nfoo = \"x\"\n"), "parse config"},
		{"bad level", write("level.toml", "[logging]\nlevel = \"loud\"\n"), "logging.level"},
		{"bad format", write("format.toml", "[logging]\nformat = \"xml\"\n"), "logging.format"},
		{"empty path", write("empty.toml", "[paths]\ntopics = \"  \"\n"), "paths.topics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bibleprep.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config = %+v, want defaults", *cfg)
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("CreateSample should refuse to overwrite")
	}
}
