package recipe2doc

import (
	"fmt"
	"strings"
)

// HTMLRenderer renders a Recipe as an HTML fragment.
// Content is taken verbatim from the record; recipe text is trusted input and
// is not entity-escaped, matching the other text formats.
type HTMLRenderer struct {
	// Initial optionally prepends a document preamble (empty by default).
	Initial string
}

// Render emits the shared document structure with HTML leaf markup.
func (r *HTMLRenderer) Render(rec *Recipe) ([]byte, error) {
	return []byte(renderDocument(rec, r, initialFragment(r.Initial, r))), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string { return ".html" }

// Name returns the format name used in output paths.
func (r *HTMLRenderer) Name() string { return FormatHTML }

// Header emits <hN>text</hN> on its own line.
func (r *HTMLRenderer) Header(text string, level int) string {
	return fmt.Sprintf("<h%d>%s</h%d>\n", level, text, level)
}

// Line emits a paragraph element.
func (r *HTMLRenderer) Line(text string) string {
	return "<p>" + text + "</p>\n"
}

// OrderedList wraps items in <ol>, one <li> per line.
func (r *HTMLRenderer) OrderedList(items []string) string {
	return htmlList("ol", items)
}

// UnorderedList wraps items in <ul>, one <li> per line.
func (r *HTMLRenderer) UnorderedList(items []string) string {
	return htmlList("ul", items)
}

func (r *HTMLRenderer) Preamble() string { return "" }

func (r *HTMLRenderer) Closing() string { return "" }

func htmlList(tag string, items []string) string {
	var b strings.Builder
	b.WriteString("<" + tag + ">\n")
	for _, item := range items {
		b.WriteString("<li>" + item + "</li>\n")
	}
	b.WriteString("</" + tag + ">\n")
	return b.String()
}
