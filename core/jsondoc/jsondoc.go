// Package jsondoc reads and writes the JSON documents handled by the batch tools.
//
// Objects keep their keys in document order and their values as raw JSON, so a
// book or topic entry passes through a run unchanged except for the fields a
// tool sets explicitly. Output is always a pretty-printed UTF-8 document with
// two-space indentation and literal (unescaped) non-ASCII characters.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
)

// Indent is the indentation unit used for every document written.
const Indent = "  "

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object that preserves key order and raw member values.
type Object struct {
	Members []Member
}

// errNotObject is returned by UnmarshalJSON when the value is not a JSON object.
var errNotObject = fmt.Errorf("value is not a JSON object")

// Get returns the raw value stored under key. When the key appears more than
// once the last occurrence wins, matching how decoders into maps behave.
func (o *Object) Get(key string) (json.RawMessage, bool) {
	for i := len(o.Members) - 1; i >= 0; i-- {
		if o.Members[i].Key == key {
			return o.Members[i].Value, true
		}
	}
	return nil, false
}

// GetString returns the value under key when it is a JSON string.
// The second result is false if the key is absent or holds any other type.
func (o *Object) GetString(key string) (string, bool) {
	raw, ok := o.Get(key)
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set replaces the value of an existing key in place, or appends the key.
func (o *Object) Set(key string, value json.RawMessage) {
	for i := len(o.Members) - 1; i >= 0; i-- {
		if o.Members[i].Key == key {
			o.Members[i].Value = value
			return
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: value})
}

// SetString stores s under key as a JSON string.
func (o *Object) SetString(key, s string) {
	o.Set(key, MarshalString(s))
}

// Keys returns the member keys in document order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// Clone returns a deep copy of o.
func (o Object) Clone() Object {
	members := make([]Member, len(o.Members))
	for i, m := range o.Members {
		members[i] = Member{Key: m.Key, Value: append(json.RawMessage(nil), m.Value...)}
	}
	return Object{Members: members}
}

// MarshalJSON implements json.Marshaler. Member values are re-encoded so that
// escaped non-ASCII input is written back as literal characters.
func (o Object) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 64)
	buf = append(buf, '{')
	for i, m := range o.Members {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, m.Key)
		buf = append(buf, ':')
		if len(m.Value) == 0 {
			buf = append(buf, "null"...)
			continue
		}
		var err error
		if buf, err = appendLiteral(buf, m.Value); err != nil {
			return nil, fmt.Errorf("member %q: %w", m.Key, err)
		}
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Duplicate keys are kept as given.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}

	members := make([]Member, 0, 8)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		members = append(members, Member{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	o.Members = members
	return nil
}

// Decode unmarshals the object into v, for callers that want a typed view.
func (o Object) Decode(v any) error {
	data, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// MarshalString encodes s as a JSON string. Non-ASCII characters, including
// U+2028 and U+2029, and HTML metacharacters are written literally.
func MarshalString(s string) json.RawMessage {
	return appendString(nil, s)
}

// DecodeArray reads a document whose top level is an array of objects.
// A document that is not valid JSON yields a ParseError; valid JSON of the
// wrong shape yields a ValidationError naming the offending position.
func DecodeArray(r io.Reader) ([]Object, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, cerrors.NewParse("JSON", "", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, cerrors.NewValidation("", "top level is not an array")
	}

	var objects []Object
	for i := 0; dec.More(); i++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, cerrors.NewParse("JSON", "", err)
		}
		var obj Object
		if err := obj.UnmarshalJSON(raw); err != nil {
			if err == errNotObject {
				return nil, cerrors.NewValidation(fmt.Sprintf("[%d]", i), "element is not an object")
			}
			return nil, cerrors.NewParse("JSON", "", err)
		}
		objects = append(objects, obj)
	}
	if _, err := dec.Token(); err != nil {
		return nil, cerrors.NewParse("JSON", "", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, cerrors.NewParse("JSON", "", fmt.Errorf("unexpected data after top-level array"))
	}
	if objects == nil {
		objects = []Object{}
	}
	return objects, nil
}

// Encode writes v as an indented document followed by a newline.
// Every string in the document is written with literal non-ASCII characters.
func Encode(w io.Writer, v any) error {
	var compact bytes.Buffer
	enc := json.NewEncoder(&compact)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	literal, err := appendLiteral(nil, compact.Bytes())
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, literal, "", Indent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

// Marshal returns the bytes Encode would write.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic encodes v and writes it to path through a temporary file in
// the same directory, so readers never observe a partially written document.
func WriteFileAtomic(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return WriteBytesAtomic(path, data)
}

// WriteBytesAtomic writes data to path via temp file and rename.
func WriteBytesAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return cerrors.NewIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return cerrors.NewIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return cerrors.NewIO("write", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return cerrors.NewIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return cerrors.NewIO("rename", path, err)
	}
	return nil
}
