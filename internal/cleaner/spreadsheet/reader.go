package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	cleanererrors "bizclean/internal/cleaner/errors"
	"bizclean/pkg/model"
)

// ReadRecords reads the first sheet of the workbook at path into raw
// records. The first row is the header; wanted columns are located by exact
// header text after trimming. A workbook with no data rows yields an empty
// slice.
func ReadRecords(path string) ([]model.RawRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, cleanererrors.ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.RawRecord{}, nil
	}

	cols := columnIndexes(rows[0])

	records := make([]model.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.RawRecord{
			CompanyName:    cellAt(row, cols, ColCompanyName),
			EmailParagraph: cellAt(row, cols, ColEmailParagraph),
			Address:        cellAt(row, cols, ColAddress),
		})
	}

	return records, nil
}

func columnIndexes(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

// cellAt returns the cell under the named column, or an empty string when
// the column is missing or the row is shorter than the header.
func cellAt(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
