package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  error
	}{
		{"simple", "gn.json", nil},
		{"digit prefix", "1jo.json", nil},
		{"unicode", "êx.json", nil},
		{"empty", "", ErrInvalidFilename},
		{"dot", ".", ErrInvalidFilename},
		{"dotdot", "..", ErrInvalidFilename},
		{"slash", "../gn.json", ErrInvalidFilename},
		{"backslash", `..\gn.json`, ErrInvalidFilename},
		{"null byte", "gn\x00.json", ErrInvalidFilename},
		{"newline", "gn\n.json", ErrInvalidFilename},
		{"hyphen", "-rf.json", ErrInvalidFilename},
		{"too long", strings.Repeat("a", MaxFilenameLength+1), ErrFilenameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFilename(%q) = %v, want nil", tt.filename, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFilename(%q) = %v, want %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestBookFilename(t *testing.T) {
	tests := []struct {
		code    string
		want    string
		wantErr bool
	}{
		{"gn", "gn.json", false},
		{"1co", "1co.json", false},
		{"", "", true},
		{".", "", true},
		{".hidden", "", true},
		{"../etc/passwd", "", true},
		{"a/b", "", true},
	}
	for _, tt := range tests {
		got, err := BookFilename(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("BookFilename(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("BookFilename(%q) error = %v, want ErrInvalidFilename", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("BookFilename(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr error
	}{
		{"public/data/nvi.json", nil},
		{"/tmp/saída/nvi.json", nil},
		{"", ErrEmptyPath},
		{"a\x00b", ErrInvalidCharacter},
		{"a\tb", ErrInvalidCharacter},
		{strings.Repeat("a", MaxPathLength+1), ErrPathTooLong},
	}
	for _, tt := range tests {
		err := ValidatePath(tt.path)
		if tt.wantErr == nil && err != nil {
			t.Errorf("ValidatePath(%q) = %v", tt.path, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, err, tt.wantErr)
		}
	}
}
