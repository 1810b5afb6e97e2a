package recipe2doc

import (
	"fmt"
	"strings"
)

// Renderer converts a parsed Recipe into a target-format document.
type Renderer interface {
	Render(rec *Recipe) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
	// Name returns the format name used in output paths (e.g. "markdown").
	Name() string
}

// leafFormatter is the per-format capability set consumed by the shared
// document template. Only this leaf markup differs between text formats.
type leafFormatter interface {
	Header(text string, level int) string
	Line(text string) string
	OrderedList(items []string) string
	UnorderedList(items []string) string
	Preamble() string
	Closing() string
}

// NewRenderer returns the renderer registered for format.
// Short aliases ("md", "tex") are accepted alongside full format names.
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "md", FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	case "tex", FormatLaTeX:
		return &LaTeXRenderer{}, nil
	case FormatPDF:
		return &PDFRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q (must be one of {%s})",
		ErrUnknownFormat, format, strings.Join(FormatChoices(), "|"))
}

// FormatChoices lists the accepted format identifiers.
func FormatChoices() []string {
	return []string{"md", "html", "tex", "pdf", "json"}
}

// renderDocument walks the record and emits the shared document structure:
// initial fragment, title header, time line, ingredient list, one section per
// stage with its numbered steps, and a trailing Comments section only when
// comments exist.
func renderDocument(rec *Recipe, leaf leafFormatter, initial string) string {
	var b strings.Builder
	b.WriteString(initial)

	title := rec.Title
	if title == "" {
		title = FallbackTitle
	}
	b.WriteString(leaf.Header(title, 1))

	timeText := rec.Time
	if timeText == "" {
		timeText = DefaultTime
	}
	b.WriteString(leaf.Line(timeText))

	b.WriteString(leaf.UnorderedList(rec.Ingredients))
	b.WriteString("\n")

	for _, stage := range rec.Stages {
		b.WriteString(leaf.Header(stage.Name, 2))
		b.WriteString(leaf.OrderedList(stage.Steps))
		b.WriteString("\n")
	}

	if len(rec.Comments) > 0 {
		b.WriteString(leaf.Header(commentsHeading, 2))
		b.WriteString(leaf.UnorderedList(rec.Comments))
	}

	b.WriteString(leaf.Closing())
	return b.String()
}

// initialFragment picks the caller-supplied override when set, otherwise the
// format's own preamble.
func initialFragment(override string, leaf leafFormatter) string {
	if override != "" {
		return override
	}
	return leaf.Preamble()
}
