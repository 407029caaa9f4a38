// Package export renders a remittance's receipts (rebuts) as PDF or XLSX.
package export

import (
	"bytes"
	"fmt"
	"time"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var receiptHeaders = []string{"Reference", "Member", "Concept", "Amount (EUR)", "Status"}

// Renderers returns the available receipt renderers keyed by format.
func Renderers() map[string]interfaces.IReceiptRenderer {
	return map[string]interfaces.IReceiptRenderer{
		FormatPDF:  PDFRenderer{},
		FormatXLSX: XLSXRenderer{},
	}
}

func euros(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// PDFRenderer renders receipts as an A4 table.
type PDFRenderer struct{}

var _ interfaces.IReceiptRenderer = PDFRenderer{}

func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Extension() string { return FormatPDF }

func (PDFRenderer) Render(rem entities.Remittance, receipts []entities.Receipt) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(fmt.Sprintf("Remittance %s", rem.ID)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Creditor: %s (%s)", rem.Creditor.Name, rem.Creditor.ID)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Execution date: %s", rem.ExecutionDate.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("State: %s", rem.State))
	pdf.Ln(5)
	if !rem.GeneratedAt.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", rem.GeneratedAt.Format(time.RFC3339)))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Receipts: %d   Total: %s EUR", len(receipts), euros(rem.TotalCents)))
	pdf.Ln(8)

	widths := []float64{60, 60, 80, 35, 30}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range receiptHeaders {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range receipts {
		pdf.CellFormat(widths[0], 6, r.Reference, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(r.MemberName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(r.Concept), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, euros(r.AmountCents), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, string(r.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSXRenderer renders a summary sheet and one row per receipt.
type XLSXRenderer struct{}

var _ interfaces.IReceiptRenderer = XLSXRenderer{}

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXRenderer) Extension() string { return FormatXLSX }

func (XLSXRenderer) Render(rem entities.Remittance, receipts []entities.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	receiptsSheet := "receipts"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(receiptsSheet); err != nil {
		return nil, err
	}

	summary := [][2]any{
		{"Remittance", rem.ID},
		{"Creditor", rem.Creditor.Name},
		{"Creditor ID", rem.Creditor.ID},
		{"Execution date", rem.ExecutionDate.Format("2006-01-02")},
		{"State", string(rem.State)},
		{"Receipts", len(receipts)},
		{"Total (EUR)", decimal.New(rem.TotalCents, -2).InexactFloat64()},
	}
	for i, kv := range summary {
		row := i + 1
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), kv[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), kv[1])
	}

	for i, h := range receiptHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(receiptsSheet, cell, h)
	}
	for i, r := range receipts {
		row := i + 2
		_ = f.SetCellValue(receiptsSheet, fmt.Sprintf("A%d", row), r.Reference)
		_ = f.SetCellValue(receiptsSheet, fmt.Sprintf("B%d", row), r.MemberName)
		_ = f.SetCellValue(receiptsSheet, fmt.Sprintf("C%d", row), r.Concept)
		_ = f.SetCellValue(receiptsSheet, fmt.Sprintf("D%d", row), decimal.New(r.AmountCents, -2).InexactFloat64())
		_ = f.SetCellValue(receiptsSheet, fmt.Sprintf("E%d", row), string(r.Status))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
