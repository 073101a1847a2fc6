package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 7.0
)

// EncodePDF renders the summary on a single A4 page.
func EncodePDF(rep Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(rep.Summary.Title, true)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 12, tr(rep.Summary.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 13)
	pdf.CellFormat(0, pdfLineHeight+1, "Profile Summary", "", 1, "L", false, 0, "")
	for _, field := range rep.Summary.Profile {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.CellFormat(50, pdfLineHeight, tr(field.Label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		pdf.CellFormat(0, pdfLineHeight, tr(field.Value), "", 1, "L", false, 0, "")
	}

	for _, table := range rep.Summary.Recent {
		pdf.Ln(4)
		pdf.SetFont(pdfFont, "B", 13)
		pdf.CellFormat(0, pdfLineHeight+1, tr(table.Title), "", 1, "L", false, 0, "")

		if !table.HasData() {
			pdf.SetFont(pdfFont, "I", 10)
			pdf.CellFormat(0, pdfLineHeight, NoDataMarker, "", 1, "L", false, 0, "")
			continue
		}

		colWidth := 180.0 / float64(len(table.Header))
		pdf.SetFont(pdfFont, "B", 10)
		for _, h := range table.Header {
			pdf.CellFormat(colWidth, pdfLineHeight, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 10)
		for _, row := range table.Rows {
			for _, v := range row {
				pdf.CellFormat(colWidth, pdfLineHeight, tr(v), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.SetY(-20)
	pdf.SetFont(pdfFont, "I", 8)
	pdf.CellFormat(0, 10, tr(rep.Summary.Footer), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
