// Package export writes the daily TabularReport to a styled spreadsheet.
// Styling and column sizing are cosmetic and live entirely here; the
// reporting engine only supplies rows and the total.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"pdv/internal/core"
)

const (
	sheetName   = "Vendas"
	currencyFmt = `"R$"#,##0.00`
)

var headers = []string{"Produto", "Quantidade", "Preço Unitário", "Valor Total"}

// ExcelWriter renders TabularReports as .xlsx files under dir.
type ExcelWriter struct {
	dir string
}

func NewExcelWriter(dir string) *ExcelWriter {
	return &ExcelWriter{dir: dir}
}

// Filename derives the deterministic report filename for a day.
func Filename(day core.Date) string {
	return fmt.Sprintf("relatorio_vendas_%s.xlsx", day)
}

// Write renders the report: styled header, one row per sale line, a bold
// trailing total row, currency formats, and auto-sized columns. Returns
// the path of the written file.
func (w *ExcelWriter) Write(report core.TabularReport) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("header style: %w", err)
	}
	numFmt := currencyFmt
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return "", fmt.Errorf("currency style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("bold style: %w", err)
	}
	boldCurrencyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return "", fmt.Errorf("bold currency style: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{
		headers[0], headers[1], headers[2], headers[3],
	}); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", headerStyle); err != nil {
		return "", fmt.Errorf("style header row: %w", err)
	}

	for i, row := range report.Rows {
		rowNum := i + 2
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetName, cell, &[]interface{}{
			row.Product,
			row.Quantity,
			row.UnitPrice.Reais(),
			row.LineTotal().Reais(),
		}); err != nil {
			return "", fmt.Errorf("write row %d: %w", rowNum, err)
		}
		if err := f.SetCellStyle(sheetName,
			fmt.Sprintf("C%d", rowNum), fmt.Sprintf("D%d", rowNum), currencyStyle); err != nil {
			return "", fmt.Errorf("style row %d: %w", rowNum, err)
		}
	}

	// Trailing total row, visually distinguished only here.
	totalRow := len(report.Rows) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return "", fmt.Errorf("write total label: %w", err)
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), report.Total.Reais()); err != nil {
		return "", fmt.Errorf("write total amount: %w", err)
	}
	if err := f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", totalRow), fmt.Sprintf("C%d", totalRow), boldStyle); err != nil {
		return "", fmt.Errorf("style total row: %w", err)
	}
	if err := f.SetCellStyle(sheetName,
		fmt.Sprintf("D%d", totalRow), fmt.Sprintf("D%d", totalRow), boldCurrencyStyle); err != nil {
		return "", fmt.Errorf("style total amount: %w", err)
	}

	if err := autoSizeColumns(f, report); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, Filename(report.Day))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	slog.Info("Daily report exported",
		"path", path,
		"rows", len(report.Rows),
		"total_cents", report.Total.Cents)

	return path, nil
}

func autoSizeColumns(f *excelize.File, report core.TabularReport) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	consider := func(col int, value string) {
		if n := len([]rune(value)); n > widths[col] {
			widths[col] = n
		}
	}
	for _, row := range report.Rows {
		consider(0, row.Product)
		consider(1, fmt.Sprintf("%d", row.Quantity))
		consider(2, row.UnitPrice.BRL())
		consider(3, row.LineTotal().BRL())
	}
	consider(0, "Total")
	consider(3, report.Total.BRL())

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width+5)); err != nil {
			return fmt.Errorf("set width of column %s: %w", name, err)
		}
	}
	return nil
}
