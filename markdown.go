package recipe2doc

import (
	"fmt"
	"strings"
)

// MarkdownRenderer renders a Recipe as a Markdown document.
type MarkdownRenderer struct {
	// Initial optionally replaces the document preamble (empty for Markdown).
	Initial string
}

// Render emits the shared document structure with Markdown leaf markup.
func (r *MarkdownRenderer) Render(rec *Recipe) ([]byte, error) {
	return []byte(renderDocument(rec, r, initialFragment(r.Initial, r))), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string { return ".md" }

// Name returns the format name used in output paths.
func (r *MarkdownRenderer) Name() string { return FormatMarkdown }

// Header emits an ATX heading followed by a blank line.
func (r *MarkdownRenderer) Header(text string, level int) string {
	return strings.Repeat("#", level) + " " + text + "\n\n"
}

// Line emits a paragraph followed by a blank line.
func (r *MarkdownRenderer) Line(text string) string {
	return text + "\n\n"
}

// OrderedList numbers items 1..N, one per line.
func (r *MarkdownRenderer) OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

// UnorderedList emits one "* item" per line.
func (r *MarkdownRenderer) UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("* " + item + "\n")
	}
	return b.String()
}

func (r *MarkdownRenderer) Preamble() string { return "" }

func (r *MarkdownRenderer) Closing() string { return "" }
