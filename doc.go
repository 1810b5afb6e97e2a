// Package recipe2doc converts plain-text tagged recipe files into rendered
// documents.
//
// # Input Format
//
// Recipes are plain text with one directive per line:
//
//	title: Pancakes
//	time: 20 min
//	ingredient: flour
//	stage: Mix
//	step: combine dry ingredients
//	comment: double the batch for a crowd
//
// Lines that do not start with a recognized tag are ignored. Steps belong to
// the most recently declared stage; a step before any stage is dropped.
//
// # Quick Start
//
// Parse a file and render it:
//
//	rec, err := recipe2doc.ParseFile("pancakes.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := (&recipe2doc.MarkdownRenderer{}).Render(rec)
//
// Or use the Service to do both in one call:
//
//	svc, err := recipe2doc.NewService("html")
//	result, err := svc.Convert(ctx, recipe2doc.Input{RecipeText: content})
//	os.WriteFile("pancakes.html", result.Output, 0644)
//
// # Output Formats
//
// Built-in renderers cover Markdown (.md), HTML (.html), LaTeX (.tex),
// PDF (.pdf, rendered natively via gofpdf), and JSON (.json). All document
// renderers share one template: title header, preparation time, ingredient
// list, one numbered section per stage, and a trailing Comments section when
// comments exist. Only the leaf markup differs per format.
//
// Custom formats plug in through the Renderer interface and
// recipe2doc.WithRenderer.
package recipe2doc
