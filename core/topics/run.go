package topics

import (
	"context"
	"fmt"

	"github.com/FocuswithJustin/bibleprep/core/translation"
)

// Options names the files of one enrichment run.
type Options struct {
	TopicsPath      string
	TranslationPath string
	OutputPath      string
}

// RunResult is what Run reports back besides the written file.
type RunResult struct {
	Report Report
	// Books is the number of distinct book codes in the translation.
	Books int
	// DuplicateBooks lists book codes that appeared more than once.
	DuplicateBooks []string
}

// Run loads both inputs, enriches every topic entry and writes the output.
// Any input or output error aborts the run and no output is written.
func Run(ctx context.Context, opts Options) (RunResult, error) {
	var result RunResult

	entries, err := LoadEntries(opts.TopicsPath)
	if err != nil {
		return result, fmt.Errorf("load topics: %w", err)
	}

	books, err := translation.Load(opts.TranslationPath)
	if err != nil {
		return result, fmt.Errorf("load translation: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	idx := translation.BuildIndex(books)
	result.Books = idx.Len()
	result.DuplicateBooks = idx.Duplicates()

	enriched, report := Enrich(entries, idx)
	result.Report = report
	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := WriteEntries(opts.OutputPath, enriched); err != nil {
		return result, fmt.Errorf("write enriched topics: %w", err)
	}
	return result, nil
}
