package tables

import "github.com/apache/arrow/go/v18/arrow"

const (
	WorkingFieldName      = "working"
	SexFieldName          = "sex"
	AgeFieldName          = "age"
	PrimaryNeedsFieldName = "primaryNeeds"
	WorkFieldName         = "work"
	OtherFieldName        = "other"
)

const (
	workingComment = "Whether the respondent is employed: \"working\" or \"not working\""
	sexComment     = "The respondent's sex: \"male\" or \"female\""
	ageComment     = "The respondent's age bracket: \"young\" (15-22), \"active\" (23-55), or \"elder\""
)

// Summary is the schema of the per-respondent and grouped-average results:
// three categorical columns derived from survey codes, and daily hours spent
// on each of the three activity groups.
var Summary = arrow.NewSchema([]arrow.Field{
	{Name: WorkingFieldName,
		Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Uint8,
			ValueType: arrow.BinaryTypes.String,
			Ordered:   false,
		},
		Metadata: NewMetadataBuilder().Add(
			comment, workingComment,
		).Build()},
	{Name: SexFieldName,
		Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Uint8,
			ValueType: arrow.BinaryTypes.String,
			Ordered:   false,
		},
		Metadata: NewMetadataBuilder().Add(
			comment, sexComment,
		).Build()},
	{Name: AgeFieldName,
		Type: &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Uint8,
			ValueType: arrow.BinaryTypes.String,
			Ordered:   false,
		},
		Metadata: NewMetadataBuilder().Add(
			comment, ageComment,
		).Build()},
	{Name: PrimaryNeedsFieldName,
		Type: arrow.PrimitiveTypes.Float64,
		Metadata: NewMetadataBuilder().Add(
			comment, "Daily hours spent on sleep, eating, and personal care",
		).Build()},
	{Name: WorkFieldName,
		Type: arrow.PrimitiveTypes.Float64,
		Metadata: NewMetadataBuilder().Add(
			comment, "Daily hours spent on work and work-related activities",
		).Build()},
	{Name: OtherFieldName,
		Type: arrow.PrimitiveTypes.Float64,
		Metadata: NewMetadataBuilder().Add(
			comment, "Daily hours spent on leisure and everything else",
		).Build()},
}, NewMetadataBuilder().Add(
	comment, "Average daily hours per activity group, by employment, sex, and age",
).BuildReference())
