package cas

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Well-known digests of the empty input.
const (
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	emptyBLAKE3 = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
)

func TestSumEmpty(t *testing.T) {
	got := Sum(nil)
	if got.SHA256 != emptySHA256 {
		t.Errorf("SHA256 = %s, want %s", got.SHA256, emptySHA256)
	}
	if got.BLAKE3 != emptyBLAKE3 {
		t.Errorf("BLAKE3 = %s, want %s", got.BLAKE3, emptyBLAKE3)
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	data := bytes.Repeat([]byte(`{"abbrev":"gn"}`), 1000)
	want := Sum(data)

	got, n, err := SumReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if n != int64(len(data)) {
		t.Errorf("n = %d, want %d", n, len(data))
	}
	if got != want {
		t.Errorf("SumReader = %+v, want %+v", got, want)
	}
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gn.json")
	data := []byte("[]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	got, n, err := SumFile(path)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if n != 3 || got != Sum(data) {
		t.Errorf("SumFile = %+v, %d", got, n)
	}

	if _, _, err := SumFile(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestCompare(t *testing.T) {
	data := []byte("No princípio")
	sum := Sum(data)

	tests := []struct {
		name string
		want HashResult
		err  error
	}{
		{"both", sum, nil},
		{"sha256 only", HashResult{SHA256: sum.SHA256}, nil},
		{"blake3 only", HashResult{BLAKE3: sum.BLAKE3}, nil},
		{"nothing", HashResult{}, nil},
		{"wrong sha256", HashResult{SHA256: emptySHA256}, ErrDigestMismatch},
		{"wrong blake3", HashResult{BLAKE3: emptyBLAKE3}, ErrDigestMismatch},
		{"malformed", HashResult{SHA256: "ABC"}, ErrInvalidHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(sum, tt.want)
			if !errors.Is(err, tt.err) {
				t.Errorf("Compare = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestIsValidHash(t *testing.T) {
	tests := []struct {
		hash string
		want bool
	}{
		{emptySHA256, true},
		{emptyBLAKE3, true},
		{"", false},
		{"abc", false},
		{"E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855", false},
		{emptySHA256 + "0", false},
	}
	for _, tt := range tests {
		if got := IsValidHash(tt.hash); got != tt.want {
			t.Errorf("IsValidHash(%q) = %v, want %v", tt.hash, got, tt.want)
		}
	}
}
