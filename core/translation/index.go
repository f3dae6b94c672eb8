package translation

import (
	"github.com/FocuswithJustin/bibleprep/core/ref"
)

// LookupStatus classifies the result of a verse lookup.
type LookupStatus int

const (
	// Found means the verse exists and Text holds it.
	Found LookupStatus = iota
	// BookNotFound means the index has no book with the requested code.
	BookNotFound
	// VerseNotFound means the book exists but the chapter or verse is out of range.
	VerseNotFound
)

func (s LookupStatus) String() string {
	switch s {
	case Found:
		return "found"
	case BookNotFound:
		return "book_not_found"
	case VerseNotFound:
		return "verse_not_found"
	default:
		return "unknown"
	}
}

// LookupResult is the outcome of Index.Lookup.
type LookupResult struct {
	Status LookupStatus
	Text   string
}

// OK reports whether the verse was found.
func (r LookupResult) OK() bool {
	return r.Status == Found
}

// Index maps book codes to books. It is read-only once built and safe for
// concurrent lookups.
type Index struct {
	books      map[string]Book
	order      []string
	duplicates []string
}

// BuildIndex indexes books by Abbrev in a single pass. When two books share
// a code the later one replaces the earlier one; the code is recorded in
// Duplicates.
func BuildIndex(books []Book) *Index {
	idx := &Index{
		books: make(map[string]Book, len(books)),
		order: make([]string, 0, len(books)),
	}
	for _, b := range books {
		if _, seen := idx.books[b.Abbrev]; seen {
			idx.duplicates = append(idx.duplicates, b.Abbrev)
		} else {
			idx.order = append(idx.order, b.Abbrev)
		}
		idx.books[b.Abbrev] = b
	}
	return idx
}

// Lookup returns the text of chapter:verse in the book with the given code.
// Chapter and verse are 1-based; zero, negative and too-large values yield
// VerseNotFound.
func (idx *Index) Lookup(code string, chapter, verse int) LookupResult {
	b, ok := idx.books[code]
	if !ok {
		return LookupResult{Status: BookNotFound}
	}
	if chapter < 1 || chapter > len(b.Chapters) {
		return LookupResult{Status: VerseNotFound}
	}
	verses := b.Chapters[chapter-1]
	if verse < 1 || verse > len(verses) {
		return LookupResult{Status: VerseNotFound}
	}
	return LookupResult{Status: Found, Text: verses[verse-1]}
}

// LookupRef is Lookup for a parsed reference.
func (idx *Index) LookupRef(r ref.Reference) LookupResult {
	return idx.Lookup(r.Book, r.Chapter, r.Verse)
}

// Book returns the indexed book for code.
func (idx *Index) Book(code string) (Book, bool) {
	b, ok := idx.books[code]
	return b, ok
}

// Books returns the indexed books in order of each code's first appearance.
func (idx *Index) Books() []Book {
	out := make([]Book, 0, len(idx.order))
	for _, code := range idx.order {
		out = append(out, idx.books[code])
	}
	return out
}

// Len returns the number of distinct book codes.
func (idx *Index) Len() int {
	return len(idx.books)
}

// Duplicates lists codes that appeared more than once, once per extra occurrence.
func (idx *Index) Duplicates() []string {
	out := make([]string, len(idx.duplicates))
	copy(out, idx.duplicates)
	return out
}
