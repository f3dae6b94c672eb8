package topics

import (
	"errors"

	"github.com/FocuswithJustin/bibleprep/core/ref"
	"github.com/FocuswithJustin/bibleprep/core/translation"
)

// Placeholder texts written in place of a verse that could not be resolved.
const (
	PlaceholderReferenceInvalid = "(Referência inválida)"
	PlaceholderBookNotFound     = "(Livro não encontrado)"
	PlaceholderVerseNotFound    = "(Versículo não encontrado)"
)

// Outcome classifies how one entry was resolved.
type Outcome int

const (
	OutcomeResolved Outcome = iota
	OutcomeReferenceInvalid
	OutcomeBookNotFound
	OutcomeVerseNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeReferenceInvalid:
		return "reference_invalid"
	case OutcomeBookNotFound:
		return "book_not_found"
	case OutcomeVerseNotFound:
		return "verse_not_found"
	default:
		return "unknown"
	}
}

// Placeholder returns the text stored for a failed outcome, or "" for OutcomeResolved.
func (o Outcome) Placeholder() string {
	switch o {
	case OutcomeReferenceInvalid:
		return PlaceholderReferenceInvalid
	case OutcomeBookNotFound:
		return PlaceholderBookNotFound
	case OutcomeVerseNotFound:
		return PlaceholderVerseNotFound
	default:
		return ""
	}
}

// Resolution is the result of resolving a single citation.
type Resolution struct {
	Outcome Outcome
	Ref     ref.Reference // zero unless the citation parsed
	Text    string        // verse text, or the outcome's placeholder
	Detail  string        // why resolution failed
}

// Resolve parses citation and looks it up in idx.
func Resolve(citation string, idx *translation.Index) Resolution {
	r, err := ref.Parse(citation)
	if err != nil {
		detail := "no chapter:verse citation"
		if errors.Is(err, ref.ErrUnknownBook) {
			detail = "unknown book title"
		}
		return Resolution{Outcome: OutcomeReferenceInvalid, Text: PlaceholderReferenceInvalid, Detail: detail}
	}

	res := idx.LookupRef(r)
	switch res.Status {
	case translation.Found:
		return Resolution{Outcome: OutcomeResolved, Ref: r, Text: res.Text}
	case translation.BookNotFound:
		return Resolution{Outcome: OutcomeBookNotFound, Ref: r, Text: PlaceholderBookNotFound,
			Detail: "book " + r.Book + " not in translation"}
	default:
		return Resolution{Outcome: OutcomeVerseNotFound, Ref: r, Text: PlaceholderVerseNotFound,
			Detail: r.String() + " out of range"}
	}
}

// Failure records one entry that did not resolve.
type Failure struct {
	Index      int
	Referencia string
	Outcome    Outcome
	Detail     string
}

// Report summarizes an enrichment run.
type Report struct {
	Total            int
	Resolved         int
	ReferenceInvalid int
	BookNotFound     int
	VerseNotFound    int
	Failures         []Failure
}

// Count returns the number of entries with outcome o.
func (r Report) Count(o Outcome) int {
	switch o {
	case OutcomeResolved:
		return r.Resolved
	case OutcomeReferenceInvalid:
		return r.ReferenceInvalid
	case OutcomeBookNotFound:
		return r.BookNotFound
	case OutcomeVerseNotFound:
		return r.VerseNotFound
	default:
		return 0
	}
}

func (r *Report) add(i int, citation string, res Resolution) {
	r.Total++
	switch res.Outcome {
	case OutcomeResolved:
		r.Resolved++
		return
	case OutcomeReferenceInvalid:
		r.ReferenceInvalid++
	case OutcomeBookNotFound:
		r.BookNotFound++
	case OutcomeVerseNotFound:
		r.VerseNotFound++
	}
	r.Failures = append(r.Failures, Failure{Index: i, Referencia: citation, Outcome: res.Outcome, Detail: res.Detail})
}

// Enrich returns a copy of entries with "texto" set on each one. The result
// has the same length and order as entries; entries themselves are not
// modified. Unresolvable citations get a placeholder and never stop the run.
func Enrich(entries []Entry, idx *translation.Index) ([]Entry, Report) {
	out := make([]Entry, len(entries))
	var report Report
	for i, e := range entries {
		citation := e.Referencia()
		res := Resolve(citation, idx)

		annotated := Entry{Object: e.Clone()}
		annotated.SetString(TextField, res.Text)
		out[i] = annotated

		report.add(i, citation, res)
	}
	return out, report
}
