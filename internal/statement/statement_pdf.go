package statement

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"unicode"

	"go-sitebooks/internal/shared/env"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	pdfFontFamily = "statement"
	pdfFontSize   = 8
	pdfRowHeight  = 5
	pdfMargin     = 10
)

// systemFonts are tried in order when STATEMENT_PDF_FONT is not set. The
// first two cover Arabic script.
var systemFonts = []string{
	"/usr/share/fonts/truetype/noto/NotoNaskhArabic-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

var (
	fontOnce  sync.Once
	fontBytes []byte
	fontErr   error
)

func pdfFont() ([]byte, error) {
	fontOnce.Do(func() {
		fontBytes, fontErr = loadPDFFont(env.String("STATEMENT_PDF_FONT", ""), systemFonts)
	})
	return fontBytes, fontErr
}

func loadPDFFont(configured string, candidates []string) ([]byte, error) {
	if configured != "" {
		data, err := os.ReadFile(configured)
		if err != nil {
			return nil, fmt.Errorf("statement pdf font: %w", err)
		}
		return data, nil
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data, nil
		}
	}
	return gomono.TTF, nil
}

func renderPDF(doc Document) ([]byte, error) {
	font, err := pdfFont()
	if err != nil {
		return nil, err
	}
	return writePDF(doc, font, true)
}

// writePDF lays the document out as an A4 landscape table. The header row
// repeats on every page.
func writePDF(doc Document, font []byte, compress bool) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", font)
	pdf.SetFont(pdfFontFamily, "", pdfFontSize)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+pdfRowHeight)
	pdf.SetTitle(doc.Title, true)
	pdf.AliasNbPages("")

	pageWidth, _ := pdf.GetPageSize()
	widths := columnWidths(pdf, doc, pageWidth-2*pdfMargin)

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			pdf.SetFontSize(pdfFontSize + 4)
			pdfCell(pdf, 0, pdfRowHeight+2, doc.Title, "", "L", false)
			pdf.Ln(-1)
			pdf.SetFontSize(pdfFontSize)
			pdfCell(pdf, 0, pdfRowHeight, doc.Subtitle, "", "L", false)
			pdf.Ln(pdfRowHeight + 1)
		}
		pdf.SetFillColor(231, 230, 230)
		for i, h := range doc.Header {
			pdfCell(pdf, widths[i], pdfRowHeight+1, fitText(pdf, h, widths[i]), "1", "L", true)
		}
		pdf.Ln(-1)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.CellFormat(0, pdfRowHeight, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, r := range doc.Rows {
		writePDFRow(pdf, widths, r)
	}
	if len(doc.Totals) > 0 {
		writePDFRow(pdf, widths, doc.Totals)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writePDFRow(pdf *fpdf.Fpdf, widths []float64, values []any) {
	for i, v := range values {
		if i >= len(widths) {
			break
		}
		align := "L"
		if isNumeric(v) {
			align = "R"
		}
		pdfCell(pdf, widths[i], pdfRowHeight, fitText(pdf, cellText(v), widths[i]), "1", align, false)
	}
	pdf.Ln(-1)
}

func pdfCell(pdf *fpdf.Fpdf, w, h float64, text, border, align string, fill bool) {
	if hasRTL(text) {
		pdf.RTL()
		defer pdf.LTR()
	}
	pdf.CellFormat(w, h, text, border, 0, align, fill, 0, "")
}

// columnWidths sizes each column by its widest cell and scales the set to
// fill the printable width.
func columnWidths(pdf *fpdf.Fpdf, doc Document, printable float64) []float64 {
	n := len(doc.Header)
	if n == 0 {
		return nil
	}
	widths := make([]float64, n)
	measure := func(i int, s string) {
		if w := pdf.GetStringWidth(s) + 2; w > widths[i] {
			widths[i] = w
		}
	}
	for i, h := range doc.Header {
		measure(i, h)
	}
	measureRow := func(r []any) {
		for i, v := range r {
			if i < n {
				measure(i, cellText(v))
			}
		}
	}
	for _, r := range doc.Rows {
		measureRow(r)
	}
	measureRow(doc.Totals)

	var total float64
	for _, w := range widths {
		total += w
	}
	if total == 0 {
		return widths
	}
	scale := printable / total
	for i := range widths {
		widths[i] *= scale
	}
	return widths
}

// fitText shortens s rune by rune until it fits in width, marking the cut
// with "~".
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s)+1 <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "~"
		if pdf.GetStringWidth(candidate)+1 <= width {
			return candidate
		}
	}
	return ""
}

func hasRTL(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Arabic, unicode.Hebrew) {
			return true
		}
	}
	return false
}
