package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ipo-subscription-scraper/models"
)

// ExcelSource reads IPO page addresses from one column of a workbook.
type ExcelSource struct {
	path   string
	column string
}

// NewExcelSource points at the workbook and the header name of the URL column.
func NewExcelSource(path, column string) *ExcelSource {
	return &ExcelSource{path: path, column: column}
}

// Addresses returns the non-empty values of the URL column from the first
// sheet, in row order. A missing file or missing column is an error that
// aborts the run before any scraping starts.
func (s *ExcelSource) Addresses() ([]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("excel: open %q: %w", s.path, err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel: sheet %q is empty", sheet)
	}

	colIdx := -1
	for i, name := range rows[0] {
		if strings.TrimSpace(name) == s.column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("excel: column %q not found; available: %s",
			s.column, strings.Join(rows[0], ", "))
	}

	var addresses []string
	for _, row := range rows[1:] {
		if colIdx >= len(row) {
			continue
		}
		if addr := strings.TrimSpace(row[colIdx]); addr != "" {
			addresses = append(addresses, addr)
		}
	}
	return addresses, nil
}

const resultSheet = "Subscriptions"

// XLSXWriter persists the finished record set as a spreadsheet.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates a writer targeting the given .xlsx path.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write builds the result sheet — one row per record under the standard
// six-column header — and saves the workbook.
func (w *XLSXWriter) Write(records []*models.SubscriptionRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultSheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	header := []string{
		"Company Name",
		"IPO Link",
		"QIB Subscription",
		"NII Subscription",
		"RII Subscription",
		"Total Subscription",
	}
	if err := w.setRow(f, 1, header); err != nil {
		return err
	}

	for i, r := range records {
		row := []string{r.CompanyName, r.URL, r.QIB, r.NII, r.RII, r.Total}
		if err := w.setRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("xlsx: create output dir: %w", err)
	}
	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("xlsx: save %q: %w", w.path, err)
	}
	return nil
}

func (w *XLSXWriter) setRow(f *excelize.File, rowNum int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("xlsx: cell name: %w", err)
		}
		if err := f.SetCellValue(resultSheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: set cell %s: %w", cell, err)
		}
	}
	return nil
}

// Close is a no-op; the workbook is written whole in Write.
func (w *XLSXWriter) Close() error { return nil }
