package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
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

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Uso: split-bible <arquivo_entrada.json>") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunSplitsIntoVersionDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	doc := `[{"abbrev":"gn","name":"Gênesis","chapters":[["a"]]},{"name":"Anônimo"},{"abbrev":"ex","name":"Êxodo","chapters":[]}]`
	if err := os.WriteFile("pt_aa.json", []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"pt_aa.json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Salvo: " + filepath.Join("public/data/bible", "pt_aa", "gn.json"),
		"Livro sem abreviação: Anônimo",
		"Divisão concluída!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}

	entries, err := os.ReadDir(filepath.Join(dir, "public", "data", "bible", "pt_aa"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("wrote %d files, want 2", len(entries))
	}
}

func TestRunMissingInput(t *testing.T) {
	chdir(t, t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"nope.json"}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if _, err := os.Stat("public"); err == nil {
		t.Error("output directory created for missing input")
	}
}
