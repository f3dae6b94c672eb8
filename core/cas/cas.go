// Package cas computes content digests for generated files.
// Every file is identified by both its SHA-256 and BLAKE3 digest so that
// consumers can verify downloads with whichever hash they support.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/zeebo/blake3"
)

// ErrInvalidHash is returned when a hash string is not a lowercase 64 character hex string.
var ErrInvalidHash = errors.New("invalid hash format")

// ErrDigestMismatch is returned by Compare when digests differ.
var ErrDigestMismatch = errors.New("digest mismatch")

var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// HashResult contains both SHA-256 and BLAKE3 digests of a blob.
type HashResult struct {
	SHA256 string `json:"sha256"`
	BLAKE3 string `json:"blake3"`
}

// Hash computes the SHA-256 hash of data.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Blake3Hash computes the BLAKE3 hash of data.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Sum computes both digests of data.
func Sum(data []byte) HashResult {
	return HashResult{SHA256: Hash(data), BLAKE3: Blake3Hash(data)}
}

// SumReader computes both digests of everything read from r in one pass.
func SumReader(r io.Reader) (HashResult, int64, error) {
	s := sha256.New()
	b := blake3.New()
	n, err := io.Copy(io.MultiWriter(s, b), r)
	if err != nil {
		return HashResult{}, n, err
	}
	return HashResult{
		SHA256: hex.EncodeToString(s.Sum(nil)),
		BLAKE3: hex.EncodeToString(b.Sum(nil)),
	}, n, nil
}

// SumFile computes both digests of the file at path.
func SumFile(path string) (HashResult, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return HashResult{}, 0, err
	}
	defer f.Close()
	return SumReader(f)
}

// IsValidHash reports whether hash looks like a hex-encoded 256-bit digest.
func IsValidHash(hash string) bool {
	return hashPattern.MatchString(hash)
}

// Compare checks computed digests got against want. Empty fields in want are
// not checked.
func Compare(got, want HashResult) error {
	for _, h := range []string{want.SHA256, want.BLAKE3} {
		if h != "" && !IsValidHash(h) {
			return ErrInvalidHash
		}
	}
	if want.SHA256 != "" && got.SHA256 != want.SHA256 {
		return fmt.Errorf("%w: sha256 %s, want %s", ErrDigestMismatch, got.SHA256, want.SHA256)
	}
	if want.BLAKE3 != "" && got.BLAKE3 != want.BLAKE3 {
		return fmt.Errorf("%w: blake3 %s, want %s", ErrDigestMismatch, got.BLAKE3, want.BLAKE3)
	}
	return nil
}
