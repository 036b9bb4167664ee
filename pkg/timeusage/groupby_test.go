package timeusage_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/willbeason/time-usage/pkg/timeusage"
)

func TestGroup(t *testing.T) {
	tt := []struct {
		name      string
		summaries []timeusage.Summary
		want      []timeusage.Summary
	}{
		{
			name:      "empty",
			summaries: nil,
			want:      nil,
		},
		{
			name: "single row passes through rounded",
			summaries: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 10.04, Work: 2.06, Other: 3.0},
			},
			want: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 10.0, Work: 2.1, Other: 3.0},
			},
		},
		{
			name: "halves round up, not to even",
			summaries: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 0.2, Work: 0.7, Other: 0.5},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 0.3, Work: 0.8, Other: 1.0},
			},
			// Means are 0.25, 0.75, and 0.75: all round up. Half-even would
			// produce 0.2 and 0.8 instead.
			want: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 0.3, Work: 0.8, Other: 0.8},
			},
		},
		{
			name: "minute-derived mean just below a half rounds down",
			summaries: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 1194.0 / 60, Work: 15.0 / 60, Other: 1197.0 / 60},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 1200.0 / 60, Work: 15.0 / 60, Other: 1197.0 / 60},
			},
			// The primaryNeeds mean reads 19.95 but its double sits just
			// below the half, so it rounds down; the work mean of 0.25 is an
			// exact half and rounds up.
			want: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active,
					PrimaryNeeds: 19.9, Work: 0.3, Other: 19.9},
			},
		},
		{
			name: "groups sorted by working, sex, age",
			summaries: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Young, PrimaryNeeds: 1},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Elder, PrimaryNeeds: 2},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active, PrimaryNeeds: 3},
				{Working: timeusage.Working, Sex: timeusage.Female, Age: timeusage.Active, PrimaryNeeds: 4},
				{Working: timeusage.NotWorking, Sex: timeusage.Male, Age: timeusage.Active, PrimaryNeeds: 5},
			},
			want: []timeusage.Summary{
				{Working: timeusage.NotWorking, Sex: timeusage.Male, Age: timeusage.Active, PrimaryNeeds: 5},
				{Working: timeusage.Working, Sex: timeusage.Female, Age: timeusage.Active, PrimaryNeeds: 4},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Active, PrimaryNeeds: 3},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Elder, PrimaryNeeds: 2},
				{Working: timeusage.Working, Sex: timeusage.Male, Age: timeusage.Young, PrimaryNeeds: 1},
			},
		},
		{
			name: "means computed per group",
			summaries: []timeusage.Summary{
				{Working: timeusage.Working, Sex: timeusage.Female, Age: timeusage.Active,
					PrimaryNeeds: 8, Work: 6, Other: 2},
				{Working: timeusage.Working, Sex: timeusage.Female, Age: timeusage.Active,
					PrimaryNeeds: 10, Work: 4, Other: 4},
				{Working: timeusage.NotWorking, Sex: timeusage.Female, Age: timeusage.Active,
					PrimaryNeeds: 12, Work: 0, Other: 6},
			},
			want: []timeusage.Summary{
				{Working: timeusage.NotWorking, Sex: timeusage.Female, Age: timeusage.Active,
					PrimaryNeeds: 12, Work: 0, Other: 6},
				{Working: timeusage.Working, Sex: timeusage.Female, Age: timeusage.Active,
					PrimaryNeeds: 9, Work: 5, Other: 3},
			},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := timeusage.Group(tc.summaries)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Group() diff (-want +got):\n%s", diff)
			}
		})
	}
}
