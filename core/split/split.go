// Package split writes one JSON file per book of a translation document.
package split

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/FocuswithJustin/bibleprep/core/cas"
	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
	"github.com/FocuswithJustin/bibleprep/core/jsondoc"
	"github.com/FocuswithJustin/bibleprep/internal/input"
	"github.com/FocuswithJustin/bibleprep/internal/logging"
	"github.com/FocuswithJustin/bibleprep/internal/validation"
)

// ManifestFile is the name of the optional digest listing.
const ManifestFile = "manifest.json"

// Skip reasons.
const (
	ReasonMissingAbbrev   = "missing abbrev"
	ReasonNonStringAbbrev = "abbrev is not a string"
	ReasonUnsafeAbbrev    = "abbrev is not a safe file name"
)

// Options controls a split run.
type Options struct {
	// Manifest also writes manifest.json with per-file digests.
	Manifest bool
	// OnWrite and OnSkip, if set, are called as each book is handled.
	OnWrite func(Written)
	OnSkip  func(Skipped)
}

// Written describes one book file.
type Written struct {
	Abbrev string
	Name   string
	File   string // base name inside the output directory
	Path   string
	Size   int64
	Digest cas.HashResult
}

// Skipped describes a book that produced no file.
type Skipped struct {
	Index  int
	Name   string
	Reason string
}

// Result lists what a split run did. Written holds one element per distinct
// file, in the order each file was first written.
type Result struct {
	Written  []Written
	Skipped  []Skipped
	Manifest string
}

type manifestEntry struct {
	File   string `json:"file"`
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Load reads a translation document as raw book objects.
func Load(path string) ([]jsondoc.Object, error) {
	return input.Decode(path, jsondoc.DecodeArray)
}

// VersionFromPath derives the translation version from an input file name:
// the base name without its compression and .json extensions.
func VersionFromPath(path string) string {
	base := input.TrimCompression(filepath.Base(path))
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// OutputDir returns root/<version> for the input at path.
func OutputDir(root, path string) string {
	return filepath.Join(root, VersionFromPath(path))
}

// Split writes every book in books to outDir as <abbrev>.json. Books without
// a usable abbrev are skipped with a warning. A later book with the same
// abbrev overwrites the earlier file.
func Split(ctx context.Context, books []jsondoc.Object, outDir string, opts Options) (Result, error) {
	var result Result

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return result, cerrors.NewIO("mkdir", outDir, err)
	}

	position := make(map[string]int)
	for i, book := range books {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := bookName(book)
		abbrev, reason := bookAbbrev(book)
		if reason != "" {
			result.skip(ctx, opts, Skipped{Index: i, Name: name, Reason: reason})
			continue
		}
		file, err := validation.BookFilename(abbrev)
		if err != nil {
			result.skip(ctx, opts, Skipped{Index: i, Name: name, Reason: ReasonUnsafeAbbrev})
			continue
		}

		data, err := jsondoc.Marshal(book)
		if err != nil {
			return result, fmt.Errorf("encode book %s: %w", abbrev, err)
		}
		path := filepath.Join(outDir, file)
		if err := jsondoc.WriteBytesAtomic(path, data); err != nil {
			return result, err
		}

		w := Written{
			Abbrev: abbrev,
			Name:   name,
			File:   file,
			Path:   path,
			Size:   int64(len(data)),
			Digest: cas.Sum(data),
		}
		if at, seen := position[file]; seen {
			result.Written[at] = w
		} else {
			position[file] = len(result.Written)
			result.Written = append(result.Written, w)
		}
		logging.BookWritten(ctx, abbrev, path, w.Size)
		if opts.OnWrite != nil {
			opts.OnWrite(w)
		}
	}

	if opts.Manifest {
		path := filepath.Join(outDir, ManifestFile)
		if err := writeManifest(path, result.Written); err != nil {
			return result, err
		}
		result.Manifest = path
	}
	return result, nil
}

func (r *Result) skip(ctx context.Context, opts Options, s Skipped) {
	r.Skipped = append(r.Skipped, s)
	logging.BookSkipped(ctx, s.Index, s.Name, s.Reason)
	if opts.OnSkip != nil {
		opts.OnSkip(s)
	}
}

// bookAbbrev returns the book's abbrev, or the reason it has no usable one.
// An absent, null or empty abbrev is missing; any other non-string is rejected.
func bookAbbrev(book jsondoc.Object) (string, string) {
	if abbrev, ok := book.GetString("abbrev"); ok {
		if abbrev == "" {
			return "", ReasonMissingAbbrev
		}
		return abbrev, ""
	}
	raw, ok := book.Get("abbrev")
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return "", ReasonMissingAbbrev
	}
	return "", ReasonNonStringAbbrev
}

// bookName renders the book's name field for messages. Non-string names are
// shown as their raw JSON.
func bookName(book jsondoc.Object) string {
	if s, ok := book.GetString("name"); ok {
		return s
	}
	if raw, ok := book.Get("name"); ok {
		return string(raw)
	}
	return ""
}

func writeManifest(path string, written []Written) error {
	entries := make([]manifestEntry, len(written))
	for i, w := range written {
		entries[i] = manifestEntry{
			File:   w.File,
			Abbrev: w.Abbrev,
			Name:   w.Name,
			Size:   w.Size,
			SHA256: w.Digest.SHA256,
			BLAKE3: w.Digest.BLAKE3,
		}
	}
	return jsondoc.WriteFileAtomic(path, entries)
}

// ReadManifest loads a manifest written by Split.
func ReadManifest(path string) ([]Written, error) {
	data, err := input.ReadAll(path)
	if err != nil {
		return nil, err
	}
	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, cerrors.NewParse("JSON", path, err)
	}
	written := make([]Written, len(entries))
	for i, e := range entries {
		if err := validation.ValidateFilename(e.File); err != nil {
			return nil, cerrors.NewValidation(fmt.Sprintf("[%d].file", i), err.Error())
		}
		written[i] = Written{
			Abbrev: e.Abbrev,
			Name:   e.Name,
			File:   e.File,
			Path:   filepath.Join(filepath.Dir(path), e.File),
			Size:   e.Size,
			Digest: cas.HashResult{SHA256: e.SHA256, BLAKE3: e.BLAKE3},
		}
	}
	return written, nil
}

// Mismatch is a manifest entry whose file no longer matches what was written.
type Mismatch struct {
	File   string
	Reason string
}

// Verify re-reads the manifest at path and checks the size and digests of
// every file it lists. The returned entries are those read from the manifest.
func Verify(ctx context.Context, path string) ([]Written, []Mismatch, error) {
	written, err := ReadManifest(path)
	if err != nil {
		return nil, nil, err
	}

	var mismatches []Mismatch
	for _, w := range written {
		if err := ctx.Err(); err != nil {
			return written, mismatches, err
		}
		got, size, err := cas.SumFile(w.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			mismatches = append(mismatches, Mismatch{File: w.File, Reason: "file is missing"})
			continue
		case err != nil:
			return written, mismatches, cerrors.NewIO("read", w.Path, err)
		}
		if size != w.Size {
			mismatches = append(mismatches, Mismatch{File: w.File, Reason: fmt.Sprintf("size %d, manifest says %d", size, w.Size)})
			continue
		}
		if err := cas.Compare(got, w.Digest); err != nil {
			mismatches = append(mismatches, Mismatch{File: w.File, Reason: err.Error()})
		}
	}
	return written, mismatches, nil
}
