package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvColumns are the required header columns of the tabular pedigree format.
var csvColumns = []string{"ind", "father", "mother", "sex"}

// ReadCSV reads rows from the tabular pedigree format. The first line must
// be a header containing the columns ind, father, mother and sex; extra
// columns are ignored and fields are whitespace-trimmed.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("pedigree CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.ToLower(col))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("pedigree CSV is missing column %q", col)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		get := func(col string) string {
			i := index[col]
			if i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}
		rows = append(rows, Row{
			Ind:    get("ind"),
			Father: get("father"),
			Mother: get("mother"),
			Sex:    get("sex"),
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("pedigree CSV contains no rows")
	}
	return rows, nil
}
