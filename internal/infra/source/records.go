package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Record is one CSV line: name, schedule text. Err is set when the line
// itself could not be decoded.
type Record struct {
	Line   int
	Fields []string
	Err    error
}

// ReadRecords decodes every line. Short lines are kept and undecodable
// lines are reported per record; deciding whether a record is usable is
// the parser's job. Only an I/O failure aborts the read.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			out = append(out, Record{Line: perr.StartLine, Err: err})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read restaurant csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		out = append(out, Record{Line: line, Fields: fields})
	}
}
