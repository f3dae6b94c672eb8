// Package main provides a standalone binary that splits one translation
// into per-book files under public/data/bible/<version>/.
//
// Usage:
//
//	split-bible <arquivo_entrada.json>
//
// Prefer using `bibleprep split` instead of this standalone binary.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/FocuswithJustin/bibleprep/core/split"
	"github.com/FocuswithJustin/bibleprep/internal/logging"
)

// outputRoot is where versions are written, relative to the working directory.
const outputRoot = "public/data/bible"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "Uso: split-bible <arquivo_entrada.json>")
		return 1
	}
	logging.InitLogger(logging.LevelWarn, logging.FormatAuto, stderr)

	input := args[0]
	books, err := split.Load(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	outDir := split.OutputDir(outputRoot, input)
	_, err = split.Split(context.Background(), books, outDir, split.Options{
		OnWrite: func(w split.Written) {
			fmt.Fprintf(stdout, "Salvo: %s\n", w.Path)
		},
		OnSkip: func(s split.Skipped) {
			fmt.Fprintf(stdout, "Livro sem abreviação: %s\n", s.Name)
		},
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Divisão concluída!")
	return 0
}
