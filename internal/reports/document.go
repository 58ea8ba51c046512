package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// DemoNotice marks documents built from demonstration rows
const DemoNotice = "Dados de demonstração"

// Document is a tabular report ready to render
type Document struct {
	Title       string
	Demo        bool
	Columns     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// Build renders the document in the requested format
func Build(doc Document, format Format) ([]byte, error) {
	switch format {
	case FormatPDF:
		return BuildPDF(doc)
	case FormatXLSX:
		return BuildXLSX(doc)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// BuildPDF renders a landscape A4 table.
func BuildPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, tr(doc.Title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Gerado em %s", doc.GeneratedAt.Format("02/01/2006 15:04"))))
	pdf.Ln(5)
	if doc.Demo {
		pdf.SetTextColor(180, 0, 0)
		pdf.Cell(0, 6, tr(DemoNotice))
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(5)
	}
	pdf.Ln(3)

	if len(doc.Columns) > 0 {
		pageWidth, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		width := (pageWidth - left - right) / float64(len(doc.Columns))

		pdf.SetFont("Arial", "B", 9)
		for _, col := range doc.Columns {
			pdf.CellFormat(width, 6, tr(col), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, row := range doc.Rows {
			for i := range doc.Columns {
				value := ""
				if i < len(row) {
					value = row[i]
				}
				pdf.CellFormat(width, 6, tr(value), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildXLSX renders a single-sheet workbook with a header row.
func BuildXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "relatorio"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(sheet, "A1", doc.Title)
	_ = f.SetCellValue(sheet, "A2", fmt.Sprintf("Gerado em %s", doc.GeneratedAt.Format("02/01/2006 15:04")))
	if doc.Demo {
		_ = f.SetCellValue(sheet, "A3", DemoNotice)
	}

	const headerRow = 5
	for i, col := range doc.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(sheet, cell, col)
	}
	for r, row := range doc.Rows {
		for i, value := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, headerRow+1+r)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
