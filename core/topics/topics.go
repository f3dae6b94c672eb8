// Package topics enriches a "verses by topic" dataset with verse text.
//
// Each topic entry is a JSON object with a "referencia" citation and any
// number of other fields. Enrichment adds a "texto" field holding either the
// cited verse or a placeholder describing why it could not be resolved. All
// other fields pass through untouched and entries keep their order.
package topics

import (
	"fmt"
	"io"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
	"github.com/FocuswithJustin/bibleprep/core/jsondoc"
	"github.com/FocuswithJustin/bibleprep/internal/input"
)

const (
	// ReferenceField holds the citation to resolve.
	ReferenceField = "referencia"
	// TextField receives the verse text or a placeholder.
	TextField = "texto"
)

// Entry is one topic entry.
type Entry struct {
	jsondoc.Object
}

// NewEntry builds an entry from key/value pairs given as alternating strings,
// e.g. NewEntry("referencia", "João 3:16", "tema", "Amor").
func NewEntry(kv ...string) Entry {
	var e Entry
	for i := 0; i+1 < len(kv); i += 2 {
		e.SetString(kv[i], kv[i+1])
	}
	return e
}

// Referencia returns the entry's citation.
func (e Entry) Referencia() string {
	s, _ := e.GetString(ReferenceField)
	return s
}

// Texto returns the entry's text field, if set.
func (e Entry) Texto() (string, bool) {
	return e.GetString(TextField)
}

// DecodeEntries reads a topic dataset. Every entry must carry a string
// "referencia"; a dataset that does not is rejected as a whole.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	objects, err := jsondoc.DecodeArray(r)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(objects))
	for i, obj := range objects {
		if _, ok := obj.GetString(ReferenceField); !ok {
			return nil, cerrors.NewValidation(fmt.Sprintf("[%d].%s", i, ReferenceField), "missing or not a string")
		}
		entries[i] = Entry{Object: obj}
	}
	return entries, nil
}

// LoadEntries reads the topic dataset at path.
func LoadEntries(path string) ([]Entry, error) {
	return input.Decode(path, DecodeEntries)
}

// EncodeEntries writes entries as an indented UTF-8 JSON array.
func EncodeEntries(w io.Writer, entries []Entry) error {
	return jsondoc.Encode(w, entries)
}

// WriteEntries writes entries to path atomically.
func WriteEntries(path string, entries []Entry) error {
	return jsondoc.WriteFileAtomic(path, entries)
}
