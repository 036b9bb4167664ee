package tables

const (
	SummaryName = "summary"

	ParquetExt = ".parquet"
)

// Field names of the American Time Use Survey diary file this pipeline
// consumes. The identifier column is free text; every other input column is
// numeric.
const (
	CaseIdFieldName = "tucaseid"
	TelfsFieldName  = "telfs"
	TesexFieldName  = "tesex"
	TeageFieldName  = "teage"
)
