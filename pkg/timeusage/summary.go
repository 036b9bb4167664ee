// Package timeusage turns classified diary records into the grouped
// time-usage summary: per-respondent projection of survey codes and minute
// columns into labeled hour totals, then averaging over each
// (working, sex, age) group.
package timeusage

// Categorical labels of the summary's three grouping columns.
const (
	Working    = "working"
	NotWorking = "not working"

	Male   = "male"
	Female = "female"

	Young  = "young"
	Active = "active"
	Elder  = "elder"
)

// Summary is one row of the six-column summary table. Projection emits one
// Summary per retained respondent; grouping emits one per distinct label
// triple, with the hour fields averaged.
type Summary struct {
	Working string
	Sex     string
	Age     string

	// Hours per day spent on each activity group.
	PrimaryNeeds float64
	Work         float64
	Other        float64
}
