package timeusage

import (
	"fmt"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/willbeason/time-usage/pkg/tables"
)

// SummaryRecord materializes summaries as an Arrow record with the
// tables.Summary schema, for writing results to Parquet. The caller must
// release the record.
func SummaryRecord(allocator memory.Allocator, summaries []Summary) (arrow.Record, error) {
	recordBuilder := array.NewRecordBuilder(allocator, tables.Summary)
	defer recordBuilder.Release()

	fields := recordBuilder.Fields()
	workingField := fields[0].(*array.BinaryDictionaryBuilder)
	sexField := fields[1].(*array.BinaryDictionaryBuilder)
	ageField := fields[2].(*array.BinaryDictionaryBuilder)
	primaryNeedsField := fields[3].(*array.Float64Builder)
	workField := fields[4].(*array.Float64Builder)
	otherField := fields[5].(*array.Float64Builder)

	for _, summary := range summaries {
		err := workingField.AppendString(summary.Working)
		if err != nil {
			return nil, fmt.Errorf("appending working label: %w", err)
		}
		err = sexField.AppendString(summary.Sex)
		if err != nil {
			return nil, fmt.Errorf("appending sex label: %w", err)
		}
		err = ageField.AppendString(summary.Age)
		if err != nil {
			return nil, fmt.Errorf("appending age label: %w", err)
		}

		primaryNeedsField.Append(summary.PrimaryNeeds)
		workField.Append(summary.Work)
		otherField.Append(summary.Other)
	}

	return recordBuilder.NewRecord(), nil
}
