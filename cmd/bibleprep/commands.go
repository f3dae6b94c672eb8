package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/FocuswithJustin/bibleprep/core/ref"
	"github.com/FocuswithJustin/bibleprep/core/split"
	"github.com/FocuswithJustin/bibleprep/core/sqlite"
	"github.com/FocuswithJustin/bibleprep/core/topics"
	"github.com/FocuswithJustin/bibleprep/core/translation"
	"github.com/FocuswithJustin/bibleprep/internal/config"
	"github.com/FocuswithJustin/bibleprep/internal/logging"
)

// SplitCmd writes one file per book under <out-root>/<version>/.
type SplitCmd struct {
	Input    string `arg:"" help:"Translation document (.json, .json.xz, .json.gz)" type:"path"`
	OutRoot  string `name:"out-root" help:"Root directory for per-version output (default from config)" type:"path"`
	Manifest bool   `help:"Also write manifest.json with file digests"`
	Verify   bool   `help:"Check existing output against its manifest.json instead of splitting"`
}

func (c *SplitCmd) Run(a *app) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	start := time.Now()
	outDir := split.OutputDir(firstNonEmpty(c.OutRoot, cfg.Paths.BibleRoot), c.Input)
	if c.Verify {
		return c.verify(a, outDir, start)
	}

	books, err := split.Load(c.Input)
	if err != nil {
		return fmt.Errorf("load translation: %w", err)
	}

	result, err := split.Split(a.ctx, books, outDir, split.Options{Manifest: c.Manifest})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Written))
	for _, w := range result.Written {
		rows = append(rows, []string{w.File, w.Name, strconv.FormatInt(w.Size, 10), w.Digest.BLAKE3[:12]})
	}
	fmt.Fprintln(a.stdout, renderTable([]string{"File", "Book", "Bytes", "BLAKE3"}, rows, 3))

	if len(result.Skipped) > 0 {
		skipped := make([][]string, 0, len(result.Skipped))
		for _, s := range result.Skipped {
			skipped = append(skipped, []string{strconv.Itoa(s.Index), s.Name, s.Reason})
		}
		fmt.Fprintln(a.stdout, renderTable([]string{"#", "Book", "Skipped because"}, skipped, 1))
	}

	logging.RunSummary(a.ctx, "split", time.Since(start),
		"input", c.Input,
		"out_dir", outDir,
		"written", len(result.Written),
		"skipped", len(result.Skipped),
	)
	return nil
}

func (c *SplitCmd) verify(a *app, outDir string, start time.Time) error {
	manifest := filepath.Join(outDir, split.ManifestFile)
	written, mismatches, err := split.Verify(a.ctx, manifest)
	if err != nil {
		return fmt.Errorf("verify %s: %w", outDir, err)
	}
	logging.RunSummary(a.ctx, "verify", time.Since(start),
		"manifest", manifest,
		"files", len(written),
		"mismatched", len(mismatches),
	)
	if len(mismatches) == 0 {
		fmt.Fprintf(a.stdout, "All %d files match %s\n", len(written), manifest)
		return nil
	}
	rows := make([][]string, 0, len(mismatches))
	for _, m := range mismatches {
		rows = append(rows, []string{m.File, m.Reason})
	}
	fmt.Fprintln(a.stdout, renderTable([]string{"File", "Problem"}, rows))
	return fmt.Errorf("%d of %d files in %s do not match the manifest", len(mismatches), len(written), outDir)
}

// EnrichCmd attaches verse text to every topic entry.
type EnrichCmd struct {
	Topics      string `help:"Topic dataset to enrich (default from config)" type:"path"`
	Translation string `help:"Translation used for lookups (default from config)" type:"path"`
	Out         string `help:"Where to write the enriched dataset (default from config)" type:"path"`
	Report      bool   `help:"Print outcome counts and every unresolved entry"`
}

func (c *EnrichCmd) Run(a *app) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	opts := topics.Options{
		TopicsPath:      firstNonEmpty(c.Topics, cfg.Paths.Topics),
		TranslationPath: firstNonEmpty(c.Translation, cfg.Paths.Translation),
		OutputPath:      firstNonEmpty(c.Out, cfg.Paths.Enriched),
	}
	start := time.Now()

	result, err := topics.Run(a.ctx, opts)
	if err != nil {
		return err
	}

	for _, code := range result.DuplicateBooks {
		logging.WarnContext(a.ctx, "duplicate book code in translation, last one wins", "abbrev", code)
	}
	report := result.Report
	for _, f := range report.Failures {
		logging.EntryUnresolved(a.ctx, f.Index, f.Referencia, f.Outcome.String(), f.Detail)
	}
	logging.RunSummary(a.ctx, "enrich", time.Since(start),
		"output", opts.OutputPath,
		"books", result.Books,
		"total", report.Total,
		"resolved", report.Resolved,
		"reference_invalid", report.ReferenceInvalid,
		"book_not_found", report.BookNotFound,
		"verse_not_found", report.VerseNotFound,
	)

	if c.Report {
		fmt.Fprintln(a.stdout, renderReport(report))
	}
	return nil
}

func renderReport(report topics.Report) string {
	outcomes := []topics.Outcome{
		topics.OutcomeResolved,
		topics.OutcomeReferenceInvalid,
		topics.OutcomeBookNotFound,
		topics.OutcomeVerseNotFound,
	}
	rows := make([][]string, 0, len(outcomes)+1)
	for _, o := range outcomes {
		rows = append(rows, []string{o.String(), strconv.Itoa(report.Count(o))})
	}
	rows = append(rows, []string{"total", strconv.Itoa(report.Total)})
	out := renderTable([]string{"Outcome", "Entries"}, rows, 2)

	if len(report.Failures) == 0 {
		return out
	}
	failures := make([][]string, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, []string{strconv.Itoa(f.Index), f.Referencia, f.Outcome.String(), f.Detail})
	}
	return out + "\n" + renderTable([]string{"#", "Referência", "Outcome", "Detail"}, failures, 1)
}

// LookupCmd resolves a single reference such as "João 3:16" or "jo 3:16".
type LookupCmd struct {
	Reference   string `arg:"" help:"Citation (\"Efésios 2:8\") or book-code reference (\"ef 2:8\")"`
	Translation string `help:"Translation used for lookups (default from config)" type:"path"`
}

func (c *LookupCmd) Run(a *app) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	r, err := ref.ParseAny(c.Reference)
	if err != nil {
		return fmt.Errorf("%q: %s: %w", c.Reference, topics.PlaceholderReferenceInvalid, err)
	}

	books, err := translation.Load(firstNonEmpty(c.Translation, cfg.Paths.Translation))
	if err != nil {
		return fmt.Errorf("load translation: %w", err)
	}
	res := translation.BuildIndex(books).LookupRef(r)
	switch res.Status {
	case translation.Found:
		fmt.Fprintln(a.stdout, res.Text)
		return nil
	case translation.BookNotFound:
		return fmt.Errorf("%s: %s", r, topics.PlaceholderBookNotFound)
	default:
		return fmt.Errorf("%s: %s", r, topics.PlaceholderVerseNotFound)
	}
}

// ExportSQLiteCmd writes a translation to an SQLite database.
type ExportSQLiteCmd struct {
	Input string `arg:"" help:"Translation document (.json, .json.xz, .json.gz)" type:"path"`
	Out   string `help:"Database path (default: <version>.db next to the input)" type:"path"`
}

func (c *ExportSQLiteCmd) Run(a *app) error {
	if _, err := a.config(); err != nil {
		return err
	}
	out := c.Out
	if out == "" {
		out = filepath.Join(filepath.Dir(c.Input), split.VersionFromPath(c.Input)+".db")
	}
	start := time.Now()

	books, err := translation.Load(c.Input)
	if err != nil {
		return fmt.Errorf("load translation: %w", err)
	}
	idx := translation.BuildIndex(books)
	for _, code := range idx.Duplicates() {
		logging.WarnContext(a.ctx, "duplicate book code in translation, last one wins", "abbrev", code)
	}

	stats, err := translation.ExportSQLite(a.ctx, idx, out)
	if err != nil {
		return err
	}
	counted, err := translation.ReadExportStats(a.ctx, out)
	if err != nil {
		return fmt.Errorf("check export: %w", err)
	}
	if counted != stats {
		return fmt.Errorf("check export: %s holds %d books, %d verses; wrote %d, %d",
			out, counted.Books, counted.Verses, stats.Books, stats.Verses)
	}
	fmt.Fprintf(a.stdout, "Exported %d books, %d verses to %s\n", stats.Books, stats.Verses, out)
	logging.RunSummary(a.ctx, "export-sqlite", time.Since(start),
		"output", out,
		"driver", sqlite.DriverName(),
		"books", stats.Books,
		"verses", stats.Verses,
	)
	return nil
}

// ConfigInitCmd writes the annotated sample configuration.
type ConfigInitCmd struct {
	Path string `arg:"" optional:"" help:"Destination (default: ./bibleprep.toml)" type:"path"`
}

func (c *ConfigInitCmd) Run(a *app) error {
	path := firstNonEmpty(c.Path, config.ProjectFile)
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Wrote sample config to %s\n", path)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	info := sqlite.GetInfo()
	fmt.Fprintf(a.stdout, "bibleprep version %s\n", version)
	fmt.Fprintf(a.stdout, "sqlite driver: %s (%s, %s)\n", info.Package, info.DriverName, info.DriverType)
	return nil
}
