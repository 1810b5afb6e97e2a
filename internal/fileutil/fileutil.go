// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// Slugify converts a document title into a safe filename component.
// Runes outside [A-Za-z0-9.-] become underscores, runs of underscores
// collapse to one, and leading/trailing separators are trimmed. An empty
// result means the title cannot name a file.
//
// Examples:
//   - "Pancakes" -> "Pancakes"
//   - "Beef & Ale Stew" -> "Beef_Ale_Stew"
//   - "../etc/passwd" -> "etc_passwd"
//   - "///" -> ""
func Slugify(title string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(title) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '.':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "__") {
		slug = strings.ReplaceAll(slug, "__", "_")
	}
	return strings.Trim(slug, "_.")
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// bare name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
