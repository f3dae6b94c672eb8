// Package input opens the JSON documents consumed by the batch tools.
// It handles plain, .xz and .gz files and strips a leading byte order mark,
// so exports saved as "UTF-8 with BOM" load the same as plain UTF-8.
package input

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	cerrors "github.com/FocuswithJustin/bibleprep/core/errors"
)

// Compression identifies how an input file is encoded on disk.
type Compression int

const (
	// None is a plain file.
	None Compression = iota
	// XZ is an .xz stream.
	XZ
	// Gzip is a .gz stream.
	Gzip
)

// DetectCompression picks the compression from the file name suffix.
func DetectCompression(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".xz"):
		return XZ
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	default:
		return None
	}
}

// TrimCompression removes a compression suffix from a file name.
func TrimCompression(name string) string {
	switch DetectCompression(name) {
	case XZ:
		return strings.TrimSuffix(name, ".xz")
	case Gzip:
		return strings.TrimSuffix(name, ".gz")
	default:
		return name
	}
}

// Reader is an open input document.
type Reader struct {
	io.Reader
	file         *os.File
	decompressor io.Closer
}

// Open opens path for reading with decompression and BOM handling applied.
// A missing file is reported as a NotFoundError.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &cerrors.NotFoundError{Resource: "input file", ID: path, Err: err}
		}
		return nil, cerrors.NewIO("open", path, err)
	}

	var reader io.Reader = f
	var decompressor io.Closer

	switch DetectCompression(path) {
	case XZ:
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, cerrors.NewIO("open", path, fmt.Errorf("xz reader: %w", err))
		}
		reader = xzr
	case Gzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, cerrors.NewIO("open", path, fmt.Errorf("gzip reader: %w", err))
		}
		reader = gzr
		decompressor = gzr
	}

	return &Reader{
		Reader:       StripBOM(reader),
		file:         f,
		decompressor: decompressor,
	}, nil
}

// StripBOM wraps r so that a UTF-8 byte order mark is dropped and UTF-16
// input with a BOM is converted to UTF-8. Other input passes through as is.
func StripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// Close closes the reader and any underlying decompressor.
func (r *Reader) Close() error {
	var errs []error
	if r.decompressor != nil {
		if err := r.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ReadAll reads the whole document at path.
func ReadAll(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cerrors.NewIO("read", path, err)
	}
	return data, nil
}

// Decode opens path and hands the reader to decode, binding path into any
// ParseError or IOError the decoder returns.
func Decode[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	r, err := Open(path)
	if err != nil {
		return zero, err
	}
	defer r.Close()

	v, err := decode(r)
	if err != nil {
		return zero, cerrors.WithPath(err, path)
	}
	return v, nil
}
