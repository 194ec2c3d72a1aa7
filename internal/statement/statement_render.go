package statement

import (
	"bytes"
	"encoding/csv"
	"html/template"

	statementerrors "go-sitebooks/internal/statement/errors"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Statement"

var contentTypes = map[string]string{
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatHTML: "text/html; charset=utf-8",
}

func IsFileFormat(f string) bool {
	_, ok := contentTypes[f]
	return ok
}

// RenderDocument serializes doc as format; baseName gets the format's extension.
func RenderDocument(doc Document, format, baseName string) (Rendered, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatXLSX:
		data, err = renderXLSX(doc)
	case FormatCSV:
		data, err = renderCSV(doc)
	case FormatPDF:
		data, err = renderPDF(doc)
	case FormatHTML:
		data, err = renderHTML(doc)
	default:
		return Rendered{}, statementerrors.ErrUnsupportedFormat
	}
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{
		Data:        data,
		ContentType: contentTypes[format],
		FileName:    baseName + "." + format,
	}, nil
}

func renderXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7E6E6"}},
		Border: []excelize.Border{{Type: "bottom", Color: "#000000", Style: 1}},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", doc.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "A2", doc.Subtitle); err != nil {
		return nil, err
	}

	row := 4
	for i, h := range doc.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	writeRow := func(r int, values []any, numberStyle, textStyle int) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r)
			if err != nil {
				return err
			}
			switch x := v.(type) {
			case decimal.Decimal:
				if err := f.SetCellFloat(sheetName, cell, x.InexactFloat64(), 2, 64); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheetName, cell, cell, numberStyle); err != nil {
					return err
				}
				continue
			case int:
				if err := f.SetCellInt(sheetName, cell, x); err != nil {
					return err
				}
			default:
				if err := f.SetCellStr(sheetName, cell, cellText(v)); err != nil {
					return err
				}
			}
			if textStyle != 0 {
				if err := f.SetCellStyle(sheetName, cell, cell, textStyle); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, values := range doc.Rows {
		row++
		if err := writeRow(row, values, amountStyle, 0); err != nil {
			return nil, err
		}
	}
	if len(doc.Totals) > 0 {
		row++
		if err := writeRow(row, doc.Totals, totalStyle, totalStyle); err != nil {
			return nil, err
		}
	}

	if len(doc.Header) > 0 {
		last, err := excelize.ColumnNumberToName(len(doc.Header))
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, "A", last, 16); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderCSV writes the header, one line per row, then the totals line.
func renderCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(doc.Header); err != nil {
		return nil, err
	}
	for _, values := range doc.Rows {
		if err := w.Write(textRow(values)); err != nil {
			return nil, err
		}
	}
	if len(doc.Totals) > 0 {
		if err := w.Write(textRow(doc.Totals)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func textRow(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cellText(v)
	}
	return out
}

var printTemplate = template.Must(template.New("statement").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 12px; margin: 24px; }
h1 { font-size: 18px; margin: 0 0 4px; }
p.period { color: #555; margin: 0 0 16px; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #999; padding: 4px 6px; }
th { background: #e7e6e6; text-align: left; }
td.num { text-align: right; white-space: nowrap; }
tfoot td { font-weight: bold; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="period">{{.Subtitle}}</p>
<table>
<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td{{if .Num}} class="num"{{end}}>{{.Text}}</td>{{end}}</tr>
{{- end}}
</tbody>
{{- if .Totals}}
<tfoot><tr>{{range .Totals}}<td{{if .Num}} class="num"{{end}}>{{.Text}}</td>{{end}}</tr></tfoot>
{{- end}}
</table>
</body>
</html>
`))

type htmlCell struct {
	Text string
	Num  bool
}

func htmlRow(values []any) []htmlCell {
	out := make([]htmlCell, len(values))
	for i, v := range values {
		out[i] = htmlCell{Text: cellText(v), Num: isNumeric(v)}
	}
	return out
}

func renderHTML(doc Document) ([]byte, error) {
	view := struct {
		Title    string
		Subtitle string
		Header   []string
		Rows     [][]htmlCell
		Totals   []htmlCell
	}{
		Title:    doc.Title,
		Subtitle: doc.Subtitle,
		Header:   doc.Header,
		Rows:     make([][]htmlCell, len(doc.Rows)),
	}
	for i, r := range doc.Rows {
		view.Rows[i] = htmlRow(r)
	}
	if len(doc.Totals) > 0 {
		view.Totals = htmlRow(doc.Totals)
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
