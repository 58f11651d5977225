package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseCSV читает csv целиком. Первая строка обязана быть заголовком,
// рваные строки считаются ошибкой формата.
func parseCSV(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv.ReadAll: %w", err)
	}

	if len(records) == 0 {
		return Table{}, errors.New("empty source: header row is required")
	}

	columns := records[0]
	// Файлы, выгруженные из excel, часто начинаются с BOM.
	columns[0] = strings.TrimPrefix(columns[0], "\uFEFF")

	rows := make([]Row, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = record[i]
		}

		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}, nil
}
