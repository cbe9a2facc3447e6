// Package pdfexport renders a notebook into a downloadable PDF: a title
// page with the notebook metadata, then each note with its saved timestamp.
package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"notevision-be/internal/entity"

	"github.com/go-pdf/fpdf"
)

// Render builds the PDF for the given notebook. forEmail is the requesting
// reader and only appears on the title page.
func Render(nb *entity.Notebook, forEmail string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetMargins(15, 15, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 24)
	pdf.CellFormat(0, 20, nb.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Notes for %s", forEmail), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Notebook Created: %s", nb.CreatedAt.Format("January 2, 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(20)

	if len(nb.Notes) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 16)
		pdf.CellFormat(0, 10, "Saved Notes", "", 1, "L", false, 0, "")
		pdf.Ln(5)

		for i, note := range nb.Notes {
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(100, 100, 100)
			savedAt := note.CreatedAt.UTC().Format("2006-01-02 03:04 PM MST")
			pdf.CellFormat(0, 8, fmt.Sprintf("Saved: %s", savedAt), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5, note.Content, "", "L", false)
			pdf.Ln(8)
			if i < len(nb.Notes)-1 {
				y := pdf.GetY()
				width, _ := pdf.GetPageSize()
				left, _, right, _ := pdf.GetMargins()
				pdf.Line(left, y, width-right, y)
				pdf.Ln(5)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename derives the attachment name, keeping only characters that are
// safe across filesystems.
func Filename(notebookName string) string {
	var b strings.Builder
	for _, r := range notebookName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ', r == '_':
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), " ")
	if safe == "" {
		safe = "Notebook"
	}
	return safe + "_Notes.pdf"
}
