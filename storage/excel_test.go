package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"ipo-subscription-scraper/models"
)

func writeInputWorkbook(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	all := append([][]string{header}, rows...)
	for rIdx, row := range all {
		for cIdx, v := range row {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestExcelSourceReadsURLColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeInputWorkbook(t, path,
		[]string{"Company", "URL_for_IPO_details"},
		[][]string{
			{"Acme", "https://example.com/acme-corp-ipo/"},
			{"Blank", ""},
			{"Zenith", "  https://example.com/zenith-labs-ipo/  "},
		})

	addresses, err := NewExcelSource(path, "URL_for_IPO_details").Addresses()
	if err != nil {
		t.Fatalf("Addresses: %v", err)
	}

	want := []string{
		"https://example.com/acme-corp-ipo/",
		"https://example.com/zenith-labs-ipo/",
	}
	if len(addresses) != len(want) {
		t.Fatalf("addresses: got %d, want %d", len(addresses), len(want))
	}
	for i := range want {
		if addresses[i] != want[i] {
			t.Errorf("address %d: got %q, want %q", i, addresses[i], want[i])
		}
	}
}

func TestExcelSourceMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeInputWorkbook(t, path, []string{"Company"}, [][]string{{"Acme"}})

	_, err := NewExcelSource(path, "URL_for_IPO_details").Addresses()
	if err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestExcelSourceMissingFile(t *testing.T) {
	_, err := NewExcelSource(filepath.Join(t.TempDir(), "nope.xlsx"), "URL").Addresses()
	if err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestXLSXWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "result.xlsx")
	records := []*models.SubscriptionRecord{
		{CompanyName: "Acme Corp", URL: "https://example.com/acme-corp-ipo/",
			QIB: "2.35x", NII: "1.10x", RII: "0.95x", Total: "1.60x", ScrapedAt: time.Now()},
		{CompanyName: models.Sentinel, URL: "https://example.com/broken-ipo/",
			QIB: models.Sentinel, NII: models.Sentinel, RII: models.Sentinel, Total: models.Sentinel, ScrapedAt: time.Now()},
	}

	w := NewXLSXWriter(path)
	if err := w.Write(records); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(resultSheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][0] != "Company Name" || rows[0][5] != "Total Subscription" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Acme Corp" || rows[1][2] != "2.35x" {
		t.Errorf("unexpected first record row: %v", rows[1])
	}
	if rows[2][3] != models.Sentinel {
		t.Errorf("sentinel not preserved: %v", rows[2])
	}
}
