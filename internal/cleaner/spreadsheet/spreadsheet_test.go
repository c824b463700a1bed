package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"bizclean/pkg/model"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeWorkbook(t, path, [][]any{
		{ColCompanyName, ColEmailParagraph, ColAddress},
		{"Acme Inc", "mail bob@acme.com", "1 Main St, Springfield, IL 62704"},
		{"Globex Corp"}, // short row: remaining cells read as empty
	})

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	want := model.RawRecord{
		CompanyName:    "Acme Inc",
		EmailParagraph: "mail bob@acme.com",
		Address:        "1 Main St, Springfield, IL 62704",
	}
	if records[0] != want {
		t.Errorf("record 0 = %+v, want %+v", records[0], want)
	}

	if records[1].CompanyName != "Globex Corp" {
		t.Errorf("record 1 CompanyName = %q, want %q", records[1].CompanyName, "Globex Corp")
	}
	if records[1].EmailParagraph != "" || records[1].Address != "" {
		t.Errorf("record 1 missing cells = %q/%q, want empty",
			records[1].EmailParagraph, records[1].Address)
	}
}

func TestReadRecords_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeWorkbook(t, path, [][]any{
		{ColCompanyName, "Phone"},
		{"Acme Inc", "555-0100"},
	})

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].CompanyName != "Acme Inc" {
		t.Errorf("CompanyName = %q, want %q", records[0].CompanyName, "Acme Inc")
	}
	if records[0].EmailParagraph != "" || records[0].Address != "" {
		t.Errorf("missing columns = %q/%q, want empty",
			records[0].EmailParagraph, records[0].Address)
	}
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeWorkbook(t, path, [][]any{
		{ColCompanyName, ColEmailParagraph, ColAddress},
	})

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestReadRecords_UnreadableFile(t *testing.T) {
	if _, err := ReadRecords(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestWriteResults(t *testing.T) {
	street := "1 Main St"
	city := "Springfield"
	state := "IL"
	zip := "62704"

	results := []model.RowResult{
		{
			CompanyName: "Acme Inc",
			Record: &model.CleanedRecord{
				CleanedName: "Acme",
				Emails:      []string{"a@b.com", "c@d.com"},
				Street:      &street,
				City:        &city,
				State:       &state,
				ZipCode:     &zip,
			},
		},
		{CompanyName: "Globex Corp", Failed: true},
	}

	path := filepath.Join(t.TempDir(), "cleaned.xlsx")
	if err := WriteResults(path, results); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open cleaned workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2)", len(rows))
	}

	wantHeader := []string{ColCompanyName, ColEmails, ColStreet, ColCity, ColState, ColZipCode}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][0] != "Acme" {
		t.Errorf("cleaned name = %q, want %q", rows[1][0], "Acme")
	}
	if rows[1][1] != "a@b.com, c@d.com" {
		t.Errorf("emails = %q, want %q", rows[1][1], "a@b.com, c@d.com")
	}
	if rows[1][4] != "IL" || rows[1][5] != "62704" {
		t.Errorf("state/zip = %q/%q, want IL/62704", rows[1][4], rows[1][5])
	}

	// Failed row: raw company name, error marker, address cells empty
	// (excelize drops trailing empty cells on read).
	if rows[2][0] != "Globex Corp" {
		t.Errorf("failed row company = %q, want %q", rows[2][0], "Globex Corp")
	}
	if rows[2][1] != ErrorMarker {
		t.Errorf("failed row emails = %q, want %q", rows[2][1], ErrorMarker)
	}
	for i := 2; i < len(rows[2]); i++ {
		if rows[2][i] != "" {
			t.Errorf("failed row cell %d = %q, want empty", i, rows[2][i])
		}
	}
}
