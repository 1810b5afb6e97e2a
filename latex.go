package recipe2doc

import (
	"fmt"
	"strings"
)

// LaTeXPreamble wraps output in a minimal article document.
const LaTeXPreamble = "\\documentclass{article}\n" +
	"\\usepackage[english]{babel}\n" +
	"\\usepackage[utf8]{inputenc}\n" +
	"\\begin{document}\n"

// latexClosing terminates the document environment.
const latexClosing = "\\end{document}"

// latexSectioning maps header levels to unnumbered sectioning commands.
// The starred forms keep recipe sections out of LaTeX's numbering.
var latexSectioning = map[int]string{
	1: "\\section*{%s}",
	2: "\\subsection*{%s}",
	3: "\\subsubsection*{%s}",
	4: "\\paragraph*{%s}",
	5: "\\subparagraph*{%s}",
}

// LaTeXRenderer renders a Recipe as a standalone LaTeX document.
type LaTeXRenderer struct {
	// Initial optionally replaces the default document preamble.
	Initial string
}

// Render emits the shared document structure with LaTeX leaf markup.
func (r *LaTeXRenderer) Render(rec *Recipe) ([]byte, error) {
	return []byte(renderDocument(rec, r, initialFragment(r.Initial, r))), nil
}

// Extension returns the file extension for LaTeX output.
func (r *LaTeXRenderer) Extension() string { return ".tex" }

// Name returns the format name used in output paths.
func (r *LaTeXRenderer) Name() string { return FormatLaTeX }

// Header emits an unnumbered sectioning command for levels 1-5; deeper levels
// fall back to a plain text line.
func (r *LaTeXRenderer) Header(text string, level int) string {
	format, ok := latexSectioning[level]
	if !ok {
		return text + "\n"
	}
	return fmt.Sprintf(format, text) + "\n"
}

// Line emits text followed by a newline.
func (r *LaTeXRenderer) Line(text string) string {
	return text + "\n"
}

// OrderedList wraps items in an enumerate environment.
func (r *LaTeXRenderer) OrderedList(items []string) string {
	return latexList("enumerate", items)
}

// UnorderedList wraps items in an itemize environment.
func (r *LaTeXRenderer) UnorderedList(items []string) string {
	return latexList("itemize", items)
}

func (r *LaTeXRenderer) Preamble() string { return LaTeXPreamble }

func (r *LaTeXRenderer) Closing() string { return latexClosing }

func latexList(env string, items []string) string {
	var b strings.Builder
	b.WriteString("\\begin{" + env + "}\n")
	for _, item := range items {
		b.WriteString("\\item " + item + "\n")
	}
	b.WriteString("\\end{" + env + "}\n")
	return b.String()
}
