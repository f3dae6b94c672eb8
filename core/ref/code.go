package ref

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// codeGrammar is the participle grammar for book-code references.
// Examples: "ef 2:8", "ef.2.8", "1jo 4:18", "jó 1:1"
//
//nolint:govet // participle grammar tags are not standard struct tags
type codeGrammar struct {
	Code    string `parser:"@Code \".\"?"`
	Chapter int    `parser:"@Int"`
	Verse   int    `parser:"( \":\" | \".\" ) @Int"`
}

// codeLexer tokenizes book-code references. Codes are lowercase, optionally
// prefixed by a book number, as in translation documents.
var codeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Code", Pattern: `[1-3]?\p{Ll}+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var codeParser = participle.MustBuild[codeGrammar](
	participle.Lexer(codeLexer),
	participle.Elide("Whitespace"),
)

// ParseCode parses a book-code reference. The code is not checked against
// the title table; it joins directly against a translation index.
func ParseCode(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, fmt.Errorf("%w: empty reference", ErrNotParseable)
	}

	parsed, err := codeParser.ParseString("", s)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %q: %v", ErrNotParseable, s, err)
	}

	return Reference{
		Book:    parsed.Code,
		Chapter: parsed.Chapter,
		Verse:   parsed.Verse,
	}, nil
}

// ParseAny tries Parse and falls back to ParseCode. The citation error is
// returned when neither form applies, since it is the more common input.
func ParseAny(s string) (Reference, error) {
	r, err := Parse(s)
	if err == nil {
		return r, nil
	}
	if codeRef, codeErr := ParseCode(s); codeErr == nil {
		return codeRef, nil
	}
	return Reference{}, err
}
