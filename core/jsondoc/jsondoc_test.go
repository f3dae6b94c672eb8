package jsondoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
)

func TestDecodeArrayPreservesOrder(t *testing.T) {
	input := `[{"tema": "Graça", "referencia": "Efésios 2:8", "n": 1, "tags": ["a", "b"]}]`
	objs, err := DecodeArray(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeArray: %v", err)
	}
	if len(objs) != 1 {
		t.Fatalf("got %d objects, want 1", len(objs))
	}
	keys := strings.Join(objs[0].Keys(), ",")
	if keys != "tema,referencia,n,tags" {
		t.Errorf("Keys() = %s", keys)
	}
	if s, ok := objs[0].GetString("referencia"); !ok || s != "Efésios 2:8" {
		t.Errorf("GetString(referencia) = %q, %v", s, ok)
	}
	if _, ok := objs[0].GetString("n"); ok {
		t.Error("GetString on a number should report false")
	}
	if _, ok := objs[0].GetString("missing"); ok {
		t.Error("GetString on a missing key should report false")
	}
}

func TestDecodeArrayErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool // ValidationError rather than ParseError
	}{
		{name: "not json", input: `not json`},
		{name: "truncated", input: `[{"a": 1}`},
		{name: "object top level", input: `{"a": 1}`, wantValid: true},
		{name: "string element", input: `["x"]`, wantValid: true},
		{name: "null element", input: `[null]`, wantValid: true},
		{name: "trailing data", input: `[] []`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArray(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *cerrors.ValidationError
			var pe *cerrors.ParseError
			if tt.wantValid && !errors.As(err, &ve) {
				t.Errorf("want ValidationError, got %T: %v", err, err)
			}
			if !tt.wantValid && !errors.As(err, &pe) {
				t.Errorf("want ParseError, got %T: %v", err, err)
			}
			if !errors.Is(err, cerrors.ErrInvalidInput) {
				t.Errorf("error should wrap ErrInvalidInput: %v", err)
			}
		})
	}
}

func TestDecodeArrayEmpty(t *testing.T) {
	objs, err := DecodeArray(strings.NewReader(" [ ] \n"))
	if err != nil {
		t.Fatalf("DecodeArray: %v", err)
	}
	if objs == nil || len(objs) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", objs)
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"texto": "old", "referencia": "João 3:16"}`)); err != nil {
		t.Fatal(err)
	}
	o.SetString("texto", "new")
	o.SetString("extra", "x")

	if got := strings.Join(o.Keys(), ","); got != "texto,referencia,extra" {
		t.Errorf("Keys() = %s", got)
	}
	if s, _ := o.GetString("texto"); s != "new" {
		t.Errorf("texto = %q", s)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"a": "1"}`)); err != nil {
		t.Fatal(err)
	}
	c := o.Clone()
	c.SetString("a", "2")
	c.SetString("b", "3")
	if s, _ := o.GetString("a"); s != "1" {
		t.Errorf("original mutated: a = %q", s)
	}
	if len(o.Members) != 1 {
		t.Errorf("original gained members: %v", o.Keys())
	}
}

func TestEncodeFormatting(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"name":"Gênesis","html":"<p>&</p>","nested":{"x":[1,2]}}`)); err != nil {
		t.Fatal(err)
	}
	got, err := Marshal([]Object{o})
	if err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "name": "Gênesis",
    "html": "<p>&</p>",
    "nested": {
      "x": [
        1,
        2
      ]
    }
  }
]
`
	if string(got) != want {
		t.Errorf("Marshal output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalStringNoEscaping(t *testing.T) {
	got := string(MarshalString(`Eu & "tu" <ele> ção`))
	want := `"Eu & \"tu\" <ele> ção"`
	if got != want {
		t.Errorf("MarshalString = %s, want %s", got, want)
	}
}

func TestDecodeTyped(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"abbrev":"gn","chapters":[["a"]]}`)); err != nil {
		t.Fatal(err)
	}
	var typed struct {
		Abbrev   string     `json:"abbrev"`
		Chapters [][]string `json:"chapters"`
	}
	if err := o.Decode(&typed); err != nil {
		t.Fatal(err)
	}
	if typed.Abbrev != "gn" || typed.Chapters[0][0] != "a" {
		t.Errorf("Decode = %+v", typed)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFileAtomic(path, []string{"ç"}); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[\n  \"ç\"\n]\n" {
		t.Errorf("file contents = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	err := WriteFileAtomic(path, []string{})
	var ioErr *cerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("want IOError, got %v", err)
	}
}

func TestEncodeUnescapesInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"latin", `{"name":"G\u00eanesis"}`, `"name": "Gênesis"`},
		{"key", `{"t\u00edtulo":1}`, `"título": 1`},
		{"nested", `{"a":{"tema":"Gra\u00e7a","l":["\u00e9"]}}`, `"tema": "Graça"`},
		{"line separator", `{"s":"a\u2028b"}`, "\"s\": \"a\u2028b\""},
		{"html", `{"s":"\u003cp\u003e \u0026"}`, `"s": "<p> &"`},
		{"quote and backslash", `{"s":"\"\\"}`, `"s": "\"\\"`},
		{"control", `{"s":"\u0001\n"}`, `"s": "\u0001\n"`},
		{"number literal", `{"n":1.50e2}`, `"n": 1.50e2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs, err := DecodeArray(strings.NewReader("[" + tt.input + "]"))
			if err != nil {
				t.Fatalf("DecodeArray: %v", err)
			}
			got, err := Marshal(objs)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if !strings.Contains(string(got), tt.want) {
				t.Errorf("output does not contain %s:\n%s", tt.want, got)
			}
		})
	}
}

func TestMarshalJSONLiteral(t *testing.T) {
	var o Object
	if err := o.UnmarshalJSON([]byte(`{"referencia": "Ef\u00e9sios 2:8", "n": [1, {"b": null}]}`)); err != nil {
		t.Fatal(err)
	}
	got, err := o.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"referencia":"Efésios 2:8","n":[1,{"b":null}]}`; string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestMarshalStringSeparators(t *testing.T) {
	got := string(MarshalString("a\u2028b\u2029c\x7f\tz"))
	want := "\"a\u2028b\u2029c\x7f\\tz\""
	if got != want {
		t.Errorf("MarshalString = %q, want %q", got, want)
	}
}
