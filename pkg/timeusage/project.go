package timeusage

import (
	"errors"
	"fmt"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/willbeason/time-usage/pkg/classify"
	"github.com/willbeason/time-usage/pkg/tables"
)

// ErrMissingColumn indicates a column the projection requires is absent from
// the record's schema. The pipeline cannot produce a meaningful result from
// a partial schema, so this is fatal.
var ErrMissingColumn = errors.New("missing required column")

// Respondents with telfs above this are not in the labor force and are
// excluded from the summary.
const maxLaborForceStatus = 4

// Project maps each diary row to a Summary: categorical labels derived from
// the telfs, tesex, and teage survey codes, and hours per day summed over
// each classified column group. Rows with telfs > 4 are dropped. Returns an
// error if any demographic or classified column is missing from the record,
// or is not float64.
func Project(record arrow.Record, groups classify.Groups) ([]Summary, error) {
	telfs, err := floatColumn(record, tables.TelfsFieldName)
	if err != nil {
		return nil, err
	}
	tesex, err := floatColumn(record, tables.TesexFieldName)
	if err != nil {
		return nil, err
	}
	teage, err := floatColumn(record, tables.TeageFieldName)
	if err != nil {
		return nil, err
	}

	primaryNeeds, err := floatColumns(record, groups.PrimaryNeeds)
	if err != nil {
		return nil, err
	}
	work, err := floatColumns(record, groups.Work)
	if err != nil {
		return nil, err
	}
	other, err := floatColumns(record, groups.Other)
	if err != nil {
		return nil, err
	}

	var summaries []Summary
	for row := 0; row < int(record.NumRows()); row++ {
		if telfs.Value(row) > maxLaborForceStatus {
			continue
		}

		summaries = append(summaries, Summary{
			Working:      workingLabel(telfs.Value(row)),
			Sex:          sexLabel(tesex.Value(row)),
			Age:          ageLabel(teage.Value(row)),
			PrimaryNeeds: sumHours(primaryNeeds, row),
			Work:         sumHours(work, row),
			Other:        sumHours(other, row),
		})
	}

	return summaries, nil
}

func workingLabel(telfs float64) string {
	if telfs >= 1 && telfs < 3 {
		return Working
	}
	return NotWorking
}

func sexLabel(tesex float64) string {
	if tesex == 1 {
		return Male
	}
	return Female
}

// Boundary ages 22 and 55 are inclusive: a 22-year-old is young and a
// 55-year-old is active.
func ageLabel(teage float64) string {
	switch {
	case teage >= 15 && teage <= 22:
		return Young
	case teage >= 23 && teage <= 55:
		return Active
	default:
		return Elder
	}
}

// sumHours totals the given minute columns for one row and converts to
// hours.
func sumHours(columns []*array.Float64, row int) float64 {
	minutes := 0.0
	for _, column := range columns {
		minutes += column.Value(row)
	}
	return minutes / 60
}

func floatColumns(record arrow.Record, names []string) ([]*array.Float64, error) {
	columns := make([]*array.Float64, len(names))
	for i, name := range names {
		column, err := floatColumn(record, name)
		if err != nil {
			return nil, err
		}
		columns[i] = column
	}
	return columns, nil
}

func floatColumn(record arrow.Record, name string) (*array.Float64, error) {
	indices := record.Schema().FieldIndices(name)
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	column, ok := record.Column(indices[0]).(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("expected column %q to be of type *array.Float64, got %T",
			name, record.Column(indices[0]))
	}
	return column, nil
}
