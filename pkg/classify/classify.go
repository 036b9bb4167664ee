// Package classify partitions the raw diary file's activity-time columns
// into the three activity groups the summary reports on.
//
// ATUS column names encode the activity's position in the official coding
// lexicon: a column beginning "t01" records minutes spent on a tier-one-01
// (personal care) activity, "t1805" on travel related to work, and so on.
// Group membership is therefore decided entirely by name prefix.
package classify

import "strings"

// Prefix rules per activity group. A name matching a primary-needs or work
// prefix never reaches the other-group test, and the three t18 travel
// sub-codes claimed by primary needs and work are excluded from the broad
// t18 prefix so no column lands in two groups.
var (
	primaryNeedsPrefixes = []string{"t01", "t03", "t11", "t1801", "t1803"}

	workPrefixes = []string{"t05", "t1805"}

	otherPrefixes = []string{
		"t02", "t04", "t06", "t07", "t08", "t09", "t10",
		"t12", "t13", "t14", "t15", "t16", "t18",
	}

	otherExclusions = []string{"t1801", "t1803", "t1805"}
)

// Groups holds the classified column names, each list preserving the
// columns' relative order in the input schema.
type Groups struct {
	PrimaryNeeds []string
	Work         []string
	Other        []string
}

// Columns assigns each column name to at most one activity group. Names
// matching no rule (the identifier and demographic columns, unclassified
// activity codes) are dropped; that is expected, not an error.
func Columns(names []string) Groups {
	var groups Groups

	for _, name := range names {
		switch {
		case hasAnyPrefix(name, primaryNeedsPrefixes):
			groups.PrimaryNeeds = append(groups.PrimaryNeeds, name)
		case hasAnyPrefix(name, workPrefixes):
			groups.Work = append(groups.Work, name)
		case hasAnyPrefix(name, otherPrefixes) && !hasAnyPrefix(name, otherExclusions):
			groups.Other = append(groups.Other, name)
		}
	}

	return groups
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
