package recipe2doc

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	out, err := (&MarkdownRenderer{}).Render(sampleRecipe())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "# Pancakes\n\n" +
		"20 min\n\n" +
		"* flour\n" +
		"* milk\n" +
		"\n" +
		"## Mix\n\n" +
		"1. combine dry ingredients\n" +
		"2. whisk in milk\n" +
		"\n" +
		"## Cook\n\n" +
		"1. pour batter\n" +
		"\n" +
		"## Comments\n\n" +
		"* serve warm\n"
	if string(out) != want {
		t.Errorf("Render() =\n%q\nwant\n%q", out, want)
	}
}

func TestMarkdownRenderer_Leaves(t *testing.T) {
	t.Parallel()

	r := &MarkdownRenderer{}

	if got := r.Header("Tea", 3); got != "### Tea\n\n" {
		t.Errorf("Header() = %q", got)
	}
	if got := r.Line("steep"); got != "steep\n\n" {
		t.Errorf("Line() = %q", got)
	}
	if got := r.OrderedList([]string{"a", "b"}); got != "1. a\n2. b\n" {
		t.Errorf("OrderedList() = %q", got)
	}
	if got := r.UnorderedList([]string{"a"}); got != "* a\n" {
		t.Errorf("UnorderedList() = %q", got)
	}
}

func TestMarkdownRenderer_CustomInitial(t *testing.T) {
	t.Parallel()

	r := &MarkdownRenderer{Initial: "<!-- generated -->\n\n"}
	out, err := r.Render(sampleRecipe())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "<!-- generated -->\n\n# Pancakes") {
		t.Errorf("custom initial fragment not emitted:\n%s", out)
	}
}

// mdHeading is a heading extracted from the goldmark AST.
type mdHeading struct {
	level int
	text  string
}

// parseMarkdownStructure parses source with goldmark and extracts headings
// plus ordered/unordered list counts.
func parseMarkdownStructure(t *testing.T, source []byte) (headings []mdHeading, ordered, unordered int) {
	t.Helper()

	doc := goldmark.New().Parser().Parse(gtext.NewReader(source))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings = append(headings, mdHeading{
				level: node.Level,
				text:  nodeText(node, source),
			})
		case *ast.List:
			if node.IsOrdered() {
				ordered++
			} else {
				unordered++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown AST: %v", err)
	}
	return headings, ordered, unordered
}

// nodeText concatenates the raw text segments beneath n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if txt, ok := c.(*ast.Text); ok {
				b.Write(txt.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func TestMarkdownRenderer_ValidStructure(t *testing.T) {
	t.Parallel()

	out, err := (&MarkdownRenderer{}).Render(sampleRecipe())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	headings, ordered, unordered := parseMarkdownStructure(t, out)

	wantHeadings := []mdHeading{
		{1, "Pancakes"},
		{2, "Mix"},
		{2, "Cook"},
		{2, "Comments"},
	}
	if len(headings) != len(wantHeadings) {
		t.Fatalf("headings = %+v, want %+v", headings, wantHeadings)
	}
	for i, want := range wantHeadings {
		if headings[i] != want {
			t.Errorf("heading[%d] = %+v, want %+v", i, headings[i], want)
		}
	}

	if ordered != 2 {
		t.Errorf("ordered lists = %d, want 2 (one per stage)", ordered)
	}
	if unordered != 2 {
		t.Errorf("unordered lists = %d, want 2 (ingredients, comments)", unordered)
	}
}
