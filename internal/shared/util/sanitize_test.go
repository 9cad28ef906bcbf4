package util

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"  My Resume.docx ", "My Resume.docx"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\jane\cv.pdf`, "cv.pdf"},
		{"cv\x00.pdf", "cv.pdf"},
		{"resume..final.pdf", "resume..final.pdf"},
	}
	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFileNameRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "..", "dir/", "/"} {
		if _, err := SanitizeFileName(in); !errors.Is(err, ErrInvalidFileName) {
			t.Fatalf("SanitizeFileName(%q) expected ErrInvalidFileName, got %v", in, err)
		}
	}
}

func TestSanitizeFileNameCapsLength(t *testing.T) {
	got, err := SanitizeFileName(strings.Repeat("a", 400) + ".pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != maxFileNameLen || !strings.HasSuffix(got, ".pdf") {
		t.Fatalf("unexpected result length %d: %q", len(got), got[len(got)-8:])
	}
}
