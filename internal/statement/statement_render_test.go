package statement_test

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"go-sitebooks/internal/statement"
	statementerrors "go-sitebooks/internal/statement/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleWorkerReport() statement.WorkerReport {
	proj := uuid.New()
	att := []statement.AttendanceRow{
		{ProjectID: proj, ProjectName: "Villa", AttendanceDate: day(1), IsPresent: true, WorkDays: d("1"), HoursWorked: d("8"), ActualWage: d("300"), PaidAmount: d("100")},
		{ProjectID: proj, ProjectName: "Villa", AttendanceDate: day(2), IsPresent: true, WorkDays: d("1"), HoursWorked: d("8"), ActualWage: d("300"), PaidAmount: d("0")},
	}
	trs := []statement.TransferRow{
		{ProjectID: proj, ProjectName: "Villa", TransferDate: day(2), Amount: d("250.5"), RecipientName: "Umm Ali", TransferMethod: "bank"},
	}
	return statement.BuildWorkerReport("w1", "Ali <Mason>", june, att, trs)
}

func TestRenderDocument_CSV(t *testing.T) {
	report := sampleWorkerReport()

	out, err := statement.RenderDocument(report.Document(), statement.FormatCSV, "worker")
	require.NoError(t, err)
	assert.Equal(t, "worker.csv", out.FileName)
	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)

	records, err := csv.NewReader(bytes.NewReader(out.Data)).ReadAll()
	require.NoError(t, err)

	dataRows := len(records) - 2
	assert.Equal(t, report.Totals.AttendanceCount+report.Totals.TransferCount, dataRows)
	assert.Equal(t, "Date", records[0][0])
	assert.Equal(t, "Totals", records[len(records)-1][0])
	assert.Equal(t, "250.50", records[3][7])
}

func TestRenderDocument_XLSX(t *testing.T) {
	report := sampleWorkerReport()

	out, err := statement.RenderDocument(report.Document(), statement.FormatXLSX, "worker")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out.Data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Statement", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Worker statement: Ali <Mason>", title)

	header, err := f.GetCellValue("Statement", "F4")
	require.NoError(t, err)
	assert.Equal(t, "Earned", header)

	rows, err := f.GetRows("Statement")
	require.NoError(t, err)
	assert.Equal(t, "Totals", rows[len(rows)-1][0])

	earned, err := f.GetCellValue("Statement", "F5", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	v, err := strconv.ParseFloat(earned, 64)
	require.NoError(t, err)
	assert.Equal(t, 300.0, v)
}

func TestRenderDocument_PDF(t *testing.T) {
	out, err := statement.RenderDocument(sampleWorkerReport().Document(), statement.FormatPDF, "worker")
	require.NoError(t, err)

	body := string(out.Data)
	assert.Equal(t, "application/pdf", out.ContentType)
	assert.True(t, strings.HasPrefix(body, "%PDF-"))
	assert.Equal(t, 1, pdfPageCount(t, body))
	assert.Contains(t, body, "%%EOF")
}

func TestRenderDocument_PDF_ArabicNames(t *testing.T) {
	report := statement.BuildWorkerReport("w1", "علي محمد", june, nil, nil)

	out, err := statement.RenderDocument(report.Document(), statement.FormatPDF, "worker")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out.Data), "%PDF-"))
	assert.NotContains(t, string(out.Data), "??? ????")
}

func TestRenderDocument_PDF_PaginatesLongStatements(t *testing.T) {
	doc := statement.Document{Title: "Long", Header: []string{"N"}}
	for i := 0; i < 200; i++ {
		doc.Rows = append(doc.Rows, []any{i})
	}
	doc.Totals = []any{"Totals"}

	out, err := statement.RenderDocument(doc, statement.FormatPDF, "long")
	require.NoError(t, err)
	assert.Greater(t, pdfPageCount(t, string(out.Data)), 1)
}

func pdfPageCount(t *testing.T, body string) int {
	t.Helper()
	m := regexp.MustCompile(`/Count (\d+)`).FindStringSubmatch(body)
	require.Len(t, m, 2)
	n, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	return n
}

func TestRenderDocument_HTML_Escapes(t *testing.T) {
	out, err := statement.RenderDocument(sampleWorkerReport().Document(), statement.FormatHTML, "worker")
	require.NoError(t, err)

	body := string(out.Data)
	assert.Contains(t, body, "Ali &lt;Mason&gt;")
	assert.NotContains(t, body, "<Mason>")
	assert.Contains(t, body, `<td class="num">250.50</td>`)
	assert.Contains(t, body, "<tfoot>")
}

func TestRenderDocument_UnknownFormat(t *testing.T) {
	_, err := statement.RenderDocument(statement.Document{}, "docx", "x")
	assert.ErrorIs(t, err, statementerrors.ErrUnsupportedFormat)
}
