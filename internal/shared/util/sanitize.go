package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameLen = 255

// ErrInvalidFileName is returned for upload names that cannot be used.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName reduces an uploaded file name to a safe base name:
// directory parts and control characters are dropped and the result is capped
// at 255 bytes while keeping the extension.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return "", ErrInvalidFileName
	}
	if len(s) > maxFileNameLen {
		ext := ""
		if dot := strings.LastIndexByte(s, '.'); dot > 0 && len(s)-dot <= 16 {
			ext = s[dot:]
		}
		s = strings.ToValidUTF8(s[:maxFileNameLen-len(ext)], "") + ext
	}
	return s, nil
}
