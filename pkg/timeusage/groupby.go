package timeusage

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type groupKey struct {
	working string
	sex     string
	age     string
}

type groupTotals struct {
	primaryNeeds float64
	work         float64
	other        float64
	count        int
}

// Group averages summaries over each distinct (working, sex, age) triple.
// Each averaged hour field is rounded to one decimal place, half up. Groups
// are returned sorted ascending by working, then sex, then age. An empty
// input yields an empty result.
func Group(summaries []Summary) []Summary {
	totals := make(map[groupKey]*groupTotals)
	for _, summary := range summaries {
		key := groupKey{working: summary.Working, sex: summary.Sex, age: summary.Age}

		total, found := totals[key]
		if !found {
			total = &groupTotals{}
			totals[key] = total
		}

		total.primaryNeeds += summary.PrimaryNeeds
		total.work += summary.Work
		total.other += summary.Other
		total.count++
	}

	grouped := make([]Summary, 0, len(totals))
	for key, total := range totals {
		n := float64(total.count)
		grouped = append(grouped, Summary{
			Working:      key.working,
			Sex:          key.sex,
			Age:          key.age,
			PrimaryNeeds: round1(total.primaryNeeds / n),
			Work:         round1(total.work / n),
			Other:        round1(total.other / n),
		})
	}

	sort.Slice(grouped, func(i, j int) bool {
		if grouped[i].Working != grouped[j].Working {
			return grouped[i].Working < grouped[j].Working
		}
		if grouped[i].Sex != grouped[j].Sex {
			return grouped[i].Sex < grouped[j].Sex
		}
		return grouped[i].Age < grouped[j].Age
	})

	return grouped
}

// round1 rounds to one decimal place, half away from zero, deciding on the
// value's decimal expansion rather than on x*10: multiplying first can land
// exactly on a half the true value sits below (19.949999999999999289*10 is
// exactly 199.5), which would round up where SQLite's ROUND rounds down.
// GroupSQL's results must match round1 exactly.
func round1(x float64) float64 {
	// 24 decimals mirrors the 26 significant digits SQLite's ROUND
	// formats through.
	expansion := strconv.FormatFloat(math.Abs(x), 'f', 24, 64)
	dot := strings.IndexByte(expansion, '.')

	whole, err := strconv.ParseInt(expansion[:dot], 10, 64)
	if err != nil {
		// Means of day-scale hour values stay well within int64 range.
		return x
	}

	tenths := int64(expansion[dot+1] - '0')
	if expansion[dot+2] >= '5' {
		tenths++
	}

	rounded := float64(whole*10+tenths) / 10
	return math.Copysign(rounded, x)
}
