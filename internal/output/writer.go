// Package output writes rendered recipe documents to the on-disk layout
// <root>/<format>/<slug>.<ext>.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-recipe2doc/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DefaultRoot is used when no output directory is configured.
const DefaultRoot = "converted"

// ErrEmptyTitle reports a title that slugifies to nothing and therefore
// cannot name an output file.
var ErrEmptyTitle = errors.New("title produces an empty filename")

// Writer writes rendered documents under a fixed output root.
type Writer struct {
	root string
}

// New creates a Writer rooted at dir, creating the directory if absent.
// An empty dir falls back to DefaultRoot in the working directory.
func New(dir string) (*Writer, error) {
	if dir == "" {
		dir = DefaultRoot
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{root: dir}, nil
}

// Root returns the output root directory.
func (w *Writer) Root() string { return w.root }

// Write stores data as <root>/<format>/<slug(title)><ext> and returns the
// written path. Titles that slugify to nothing are rejected rather than
// silently producing an extension-only filename.
func (w *Writer) Write(title, format string, data []byte, ext string) (string, error) {
	slug := fileutil.Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyTitle, title)
	}

	dir := filepath.Join(w.root, format)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating format directory: %w", err)
	}

	path := filepath.Join(dir, slug+ext)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
