package csvio_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/willbeason/time-usage/pkg/csvio"
)

func TestNumberStats(t *testing.T) {
	tt := []struct {
		name  string
		cells []string
		want  string
	}{
		{
			name:  "survey code enum",
			cells: []string{"1", "2", "1", "5", "1"},
			want:  "uint8;1;5;enum 3",
		},
		{
			name:  "negative integers",
			cells: []string{"-1", "300", "7"},
			want:  "int16;-1;300;enum 3",
		},
		{
			name:  "fractional minutes",
			cells: []string{"1.5", "0", "870"},
			want:  "float64;0.000000;870.000000;enum 3",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			stats := csvio.NewNumberStats()
			for _, cell := range tc.cells {
				err := stats.Add(cell)
				if err != nil {
					t.Fatal(err)
				}
			}

			if got := stats.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNumberStatsWideEnum(t *testing.T) {
	stats := csvio.NewNumberStats()
	for i := 0; i <= 2*csvio.MaxEnum; i++ {
		err := stats.Add(fmt.Sprintf("%d", i))
		if err != nil {
			t.Fatal(err)
		}
	}

	if got := stats.String(); got != "uint8;0;40" {
		t.Errorf("got %q, want %q", got, "uint8;0;40")
	}
}

func TestNumberStatsBadCell(t *testing.T) {
	stats := csvio.NewNumberStats()
	err := stats.Add("employed")
	if !errors.Is(err, csvio.ErrBadCell) {
		t.Fatalf("got error %v, want ErrBadCell", err)
	}
}

func TestIdStats(t *testing.T) {
	stats := csvio.NewIdStats()
	for _, cell := range []string{"a", "b", "a"} {
		err := stats.Add(cell)
		if err != nil {
			t.Fatal(err)
		}
	}

	if got := stats.String(); got != "id;3;2 unique" {
		t.Errorf("got %q, want %q", got, "id;3;2 unique")
	}
}
