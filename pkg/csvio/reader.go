// Package csvio reads activity-diary CSV files into Arrow records.
//
// The diary format fixes column types by position: the first column is a
// free-text case identifier, and every remaining column holds a number (a
// survey code or minutes spent on one activity). The header row names the
// columns; values are never inferred from data, and a non-numeric cell in a
// numeric column is an error rather than a null.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
)

var (
	// ErrNoHeader indicates the input ended before a header row.
	ErrNoHeader = errors.New("diary input has no header row")

	// ErrBadCell indicates a numeric column held a value that does not
	// parse as a number.
	ErrBadCell = errors.New("non-numeric value in numeric column")
)

// Schema builds the Arrow schema a diary header row implies.
func Schema(header []string) *arrow.Schema {
	fields := make([]arrow.Field, len(header))
	fields[0] = arrow.Field{Name: header[0], Type: arrow.BinaryTypes.String}
	for i := 1; i < len(header); i++ {
		fields[i] = arrow.Field{Name: header[i], Type: arrow.PrimitiveTypes.Float64}
	}
	return arrow.NewSchema(fields, nil)
}

// ReadTable reads an entire diary table from reader into a single Arrow
// record. The caller must release the record.
//
// Input may be several concatenated diary files; a repeated header row
// (recognized by its leading cell matching the first header's leading cell)
// is skipped rather than parsed as data.
func ReadTable(reader io.Reader, allocator memory.Allocator) (arrow.Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	line, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	header := make([]string, len(line))
	copy(header, line)

	recordBuilder := array.NewRecordBuilder(allocator, Schema(header))
	defer recordBuilder.Release()

	fields := recordBuilder.Fields()
	caseIdField := fields[0].(*array.StringBuilder)
	minuteFields := make([]*array.Float64Builder, len(fields)-1)
	for i := 1; i < len(fields); i++ {
		minuteFields[i-1] = fields[i].(*array.Float64Builder)
	}

	row := 0
	for line, err = csvReader.Read(); err == nil; line, err = csvReader.Read() {
		if line[0] == header[0] {
			// Header row of a concatenated file.
			continue
		}
		row++

		caseIdField.Append(line[0])

		for i := 1; i < len(line); i++ {
			value, errParse := strconv.ParseFloat(line[i], 64)
			if errParse != nil {
				return nil, fmt.Errorf("%w: row %d, column %q holds %q",
					ErrBadCell, row, header[i], line[i])
			}
			minuteFields[i-1].Append(value)
		}
	}
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading diary rows: %w", err)
	}

	return recordBuilder.NewRecord(), nil
}
