package profile

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseCSV reads an hourly capacity factor series: one value per row, first
// column, optional header row. Unparseable or negative values become zero and
// are counted, short files are zero-padded, rows past the year are ignored.
// Rows must stay aligned to hours, so a bad row is substituted rather than
// skipped.
func ParseCSV(r io.Reader) (*Profile, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var p Profile
	hour := 0
	bad := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, bad, err
		}
		if len(record) == 0 {
			continue
		}
		field := strings.TrimSpace(record[0])
		// Tolerate a header row and comment lines.
		if hour == 0 && !isNumeric(field) {
			continue
		}
		if hour >= HoursPerYear {
			break
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || v < 0 {
			bad++
			v = 0
		}
		p[hour] = v
		hour++
	}

	// Short files leave the remaining hours at zero.
	bad += HoursPerYear - hour

	p.Sanitize()
	return &p, bad, nil
}

// LoadCSV opens and parses a capacity factor CSV file.
func LoadCSV(path string) (*Profile, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ParseCSV(f)
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
