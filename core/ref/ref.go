// Package ref parses scripture citations into book-code references.
//
// Two input forms are understood:
//
//   - citations as written in topic datasets, "Efésios 2:8" or "1 João 4:18",
//     resolved through the Portuguese book-title table (Parse);
//   - book-code references as used in translation documents, "ef 2:8" or
//     "1jo.4.18" (ParseCode).
package ref

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Reference is a fully resolved book/chapter/verse triple.
type Reference struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// String renders the reference in book-code form, e.g. "ef 2:8".
func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

var (
	// ErrNotParseable is matched by every parse failure.
	ErrNotParseable = errors.New("reference not parseable")
	// ErrNoMatch means the text has no "<book> <chapter>:<verse>" prefix.
	ErrNoMatch = fmt.Errorf("%w: no chapter:verse citation", ErrNotParseable)
	// ErrUnknownBook means the citation named a title missing from the table.
	ErrUnknownBook = fmt.Errorf("%w: unknown book", ErrNotParseable)
)

// Character classes follow Unicode-aware \w and \s so accented titles such as
// "Gênesis" or "Cânticos" count as single words.
const (
	wordClass  = `[\p{L}\p{N}_]`
	spaceClass = `[\t-\r\x{1c}-\x{1f} \x{85}\p{Z}]`
)

// citationPattern is anchored at the start only; anything after the verse
// number is ignored.
var citationPattern = regexp.MustCompile(
	`^([1-3]?` + spaceClass + `?` + wordClass + `+` + spaceClass + `?` + wordClass + `*)` +
		spaceClass + `([0-9]+):([0-9]+)`)

// Parse resolves a citation such as "Efésios 2:8" to {ef 2 8}.
//
// The error wraps ErrNoMatch when the text is not a citation at all and
// ErrUnknownBook when the title is not in the table; both match
// ErrNotParseable. Book titles are matched exactly, including case and
// accents. Chapter and verse are not range-checked here.
func Parse(s string) (Reference, error) {
	m := citationPattern.FindStringSubmatch(s)
	if m == nil {
		return Reference{}, fmt.Errorf("%w: %q", ErrNoMatch, s)
	}

	name := strings.TrimSpace(m[1])
	code, ok := Code(name)
	if !ok {
		return Reference{}, fmt.Errorf("%w: %q", ErrUnknownBook, name)
	}

	return Reference{
		Book:    code,
		Chapter: atoiSaturating(m[2]),
		Verse:   atoiSaturating(m[3]),
	}, nil
}

// atoiSaturating parses a run of ASCII digits. Values too large for int
// become math.MaxInt so they fail later as out-of-range lookups rather than
// as unparseable citations.
func atoiSaturating(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
