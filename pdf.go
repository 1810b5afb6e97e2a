package recipe2doc

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF layout constants (millimeters unless noted).
const (
	pdfTitleSize   = 18 // points
	pdfSectionSize = 15 // points
	pdfBodySize    = 10 // points
	pdfLineHeight  = 5
	pdfBottomMargin = 15
)

// PDFRenderer renders a Recipe as a PDF document.
// Unlike the text renderers it builds the document directly instead of going
// through the leaf-markup template, since PDF output is positional rather
// than markup-based.
type PDFRenderer struct{}

// Render produces the PDF bytes for rec. The document structure mirrors the
// text formats: title, time, ingredients, one section per stage with numbered
// steps, and a trailing Comments section when comments exist.
func (r *PDFRenderer) Render(rec *Recipe) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, pdfBottomMargin)
	pdf.AddPage()

	title := rec.Title
	if title == "" {
		title = FallbackTitle
	}
	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(2)

	timeText := rec.Time
	if timeText == "" {
		timeText = DefaultTime
	}
	pdf.SetFont("Helvetica", "I", pdfBodySize)
	pdf.MultiCell(0, pdfLineHeight, timeText, "", "L", false)
	pdf.Ln(4)

	pdfBullets(pdf, rec.Ingredients)
	pdf.Ln(3)

	for _, stage := range rec.Stages {
		pdfHeading(pdf, stage.Name)
		pdf.SetFont("Helvetica", "", pdfBodySize)
		for i, step := range stage.Steps {
			pdf.MultiCell(0, pdfLineHeight, fmt.Sprintf("%d. %s", i+1, step), "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(rec.Comments) > 0 {
		pdfHeading(pdf, commentsHeading)
		pdfBullets(pdf, rec.Comments)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string { return ".pdf" }

// Name returns the format name used in output paths.
func (r *PDFRenderer) Name() string { return FormatPDF }

func pdfHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", pdfSectionSize)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}

// pdfBullets writes a dash-bulleted list. Core PDF fonts are cp1252, so the
// ASCII dash is used instead of a Unicode bullet.
func pdfBullets(pdf *gofpdf.Fpdf, items []string) {
	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, item := range items {
		pdf.MultiCell(0, pdfLineHeight, "- "+item, "", "L", false)
	}
}
