package cloud

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvComma is the field separator of the cloud CSV format: one
// semicolon-separated line per axis.
const csvComma = ';'

// FromCSV reads a cloud from r in the axis-per-line format: line i holds
// the i-th coordinate of every point, fields separated by semicolons.
// Returns ErrCSV (wrapping the underlying parse error) on malformed
// input, ErrRagged if lines have differing lengths, ErrNoData if empty.
func FromCSV(r io.Reader) (Cloud, error) {
	cr := csv.NewReader(r)
	cr.Comma = csvComma
	cr.FieldsPerRecord = -1 // length equality is reported as ErrRagged

	var data [][]float64
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Cloud{}, fmt.Errorf("%w: %w", ErrCSV, err)
		}
		axis := make([]float64, len(record))
		for i, field := range record {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return Cloud{}, fmt.Errorf("%w: field %q: %w", ErrCSV, field, perr)
			}
			axis[i] = v
		}
		data = append(data, axis)
	}

	return New(data)
}

// WriteCSV writes the cloud to w in the axis-per-line format read by
// FromCSV. Values are rendered with strconv.FormatFloat 'g', full
// precision, so a round-trip reproduces the cloud exactly.
func (c Cloud) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvComma
	record := make([]string, c.Points())
	for _, axis := range c.data {
		for j, v := range axis {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
