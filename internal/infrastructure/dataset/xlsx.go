package dataset

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// parseXLSX читает первый лист книги. Хвостовые пустые ячейки excelize
// обрезает, поэтому короткие строки добиваются пустыми значениями.
func parseXLSX(r io.Reader) (Table, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer file.Close() //nolint:errcheck

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, errors.New("workbook has no sheets")
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("excelize.GetRows: %w", err)
	}

	if len(records) == 0 {
		return Table{}, errors.New("empty sheet: header row is required")
	}

	columns := records[0]
	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}

		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}
