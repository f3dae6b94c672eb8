// Package translation loads Bible translation documents and indexes them for
// verse lookup by book code.
//
// A translation document is a JSON array of books:
//
//	[{"abbrev": "gn", "name": "Gênesis", "chapters": [["No princípio...", ...], ...]}, ...]
//
// Chapters and verses are numbered from 1 in references and stored from 0.
package translation

import (
	"fmt"
	"io"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
	"github.com/FocuswithJustin/bibleprep/core/jsondoc"
	"github.com/FocuswithJustin/bibleprep/internal/input"
)

// Book is one book of a translation.
type Book struct {
	Abbrev   string     `json:"abbrev"`
	Name     string     `json:"name"`
	Chapters [][]string `json:"chapters"`
}

// VerseCount returns the number of verses across all chapters.
func (b Book) VerseCount() int {
	n := 0
	for _, ch := range b.Chapters {
		n += len(ch)
	}
	return n
}

// Decode reads a translation document.
func Decode(r io.Reader) ([]Book, error) {
	objects, err := jsondoc.DecodeArray(r)
	if err != nil {
		return nil, err
	}
	return FromObjects(objects)
}

// FromObjects converts already-decoded book objects into typed books.
func FromObjects(objects []jsondoc.Object) ([]Book, error) {
	books := make([]Book, 0, len(objects))
	for i, obj := range objects {
		var b Book
		if err := obj.Decode(&b); err != nil {
			return nil, cerrors.NewValidation(fmt.Sprintf("[%d]", i), fmt.Sprintf("not a translation book: %v", err))
		}
		books = append(books, b)
	}
	return books, nil
}

// Load reads the translation document at path. Missing files, malformed JSON
// and documents of the wrong shape are all errors; nothing is recovered.
func Load(path string) ([]Book, error) {
	return input.Decode(path, Decode)
}
