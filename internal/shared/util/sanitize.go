package util

import (
	"errors"
	"strings"
)

// SanitizeFileName rejects traversal patterns and neutralizes characters
// that are unsafe in paths or inside a quoted Content-Disposition filename:
// path separators and double quotes become underscores, control characters
// are dropped.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, s)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
