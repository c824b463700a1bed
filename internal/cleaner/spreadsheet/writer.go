package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"bizclean/pkg/model"
)

// WriteResults writes one output row per result, in order, under the
// cleaned-workbook header. Failed rows keep their company name, carry the
// error marker in the Emails column and leave the address columns empty.
func WriteResults(path string, results []model.RowResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := []any{ColCompanyName, ColEmails, ColStreet, ColCity, ColState, ColZipCode}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, res := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := outputRow(res)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func outputRow(res model.RowResult) []any {
	if res.Failed || res.Record == nil {
		return []any{res.CompanyName, ErrorMarker, "", "", "", ""}
	}

	rec := res.Record
	return []any{
		rec.CleanedName,
		strings.Join(rec.Emails, emailSeparator),
		deref(rec.Street),
		deref(rec.City),
		deref(rec.State),
		deref(rec.ZipCode),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
