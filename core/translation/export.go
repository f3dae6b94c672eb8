package translation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
	"github.com/FocuswithJustin/bibleprep/core/sqlite"
)

const schema = `
CREATE TABLE books (
	abbrev TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	book_order INTEGER NOT NULL
);
CREATE TABLE verses (
	id TEXT PRIMARY KEY,
	book TEXT NOT NULL REFERENCES books(abbrev),
	chapter INTEGER NOT NULL,
	verse INTEGER NOT NULL,
	text TEXT NOT NULL
);
CREATE INDEX idx_verses_ref ON verses(book, chapter, verse);
`

// ExportStats summarizes an SQLite export.
type ExportStats struct {
	Books  int
	Verses int
}

// VerseID is the primary key used for a verse row, e.g. "ef.2.8".
func VerseID(code string, chapter, verse int) string {
	return fmt.Sprintf("%s.%d.%d", code, chapter, verse)
}

// ExportSQLite writes every indexed book into a new database at path,
// replacing any existing file. Books are numbered in index order from 1.
// All rows are written in one transaction; on error the file is removed.
func ExportSQLite(ctx context.Context, idx *Index, path string) (stats ExportStats, err error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return stats, cerrors.NewIO("remove", path, err)
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return stats, fmt.Errorf("create schema: %w", err)
	}

	bookStmt, err := tx.PrepareContext(ctx, `INSERT INTO books (abbrev, name, book_order) VALUES (?, ?, ?)`)
	if err != nil {
		return stats, fmt.Errorf("prepare books insert: %w", err)
	}
	defer bookStmt.Close()

	verseStmt, err := tx.PrepareContext(ctx, `INSERT INTO verses (id, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return stats, fmt.Errorf("prepare verses insert: %w", err)
	}
	defer verseStmt.Close()

	for i, b := range idx.Books() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if _, err := bookStmt.ExecContext(ctx, b.Abbrev, b.Name, i+1); err != nil {
			return stats, fmt.Errorf("insert book %s: %w", b.Abbrev, err)
		}
		stats.Books++

		for c, verses := range b.Chapters {
			for v, text := range verses {
				id := VerseID(b.Abbrev, c+1, v+1)
				if _, err := verseStmt.ExecContext(ctx, id, b.Abbrev, c+1, v+1, text); err != nil {
					return stats, fmt.Errorf("insert verse %s: %w", id, err)
				}
				stats.Verses++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("commit export: %w", err)
	}
	return stats, nil
}

// ReadExportStats counts the book and verse rows of an exported database,
// opening it read-only.
func ReadExportStats(ctx context.Context, path string) (ExportStats, error) {
	var stats ExportStats
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return stats, err
	}
	defer db.Close()

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM books`).Scan(&stats.Books); err != nil {
		return stats, fmt.Errorf("count books in %s: %w", path, err)
	}
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verses`).Scan(&stats.Verses); err != nil {
		return stats, fmt.Errorf("count verses in %s: %w", path, err)
	}
	return stats, nil
}
