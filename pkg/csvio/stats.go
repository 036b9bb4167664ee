package csvio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxEnum is the largest number of unique values to track before not trying
// to interpret a column as an enumeration.
const MaxEnum = 20

// ColumnStats summarizes the values seen in one diary column. Used by the
// diary-stats command to sanity-check a dataset before summarizing it:
// survey-code columns should report as small enumerations, minute columns
// as integers within 0-1440.
type ColumnStats interface {
	Add(cell string) error
	String() string
}

// IdStats summarizes the free-text identifier column.
type IdStats struct {
	// Rows is the number of values seen.
	Rows int
	// Seen tracks unique identifiers, to detect duplicate case ids.
	// Stops growing once its size exceeds MaxEnum.
	Seen map[string]int
}

func NewIdStats() *IdStats {
	return &IdStats{Seen: make(map[string]int)}
}

func (s *IdStats) Add(cell string) error {
	s.Rows++
	if len(s.Seen) <= MaxEnum {
		s.Seen[cell]++
	}
	return nil
}

func (s *IdStats) String() string {
	if len(s.Seen) <= MaxEnum {
		return fmt.Sprintf("id;%d;%d unique", s.Rows, len(s.Seen))
	}
	return fmt.Sprintf("id;%d", s.Rows)
}

// NumberStats summarizes a numeric column. Tracks the properties needed to
// report the narrowest type holding every seen value.
type NumberStats struct {
	// Rows is the number of values seen.
	Rows int

	// Integral tracks if all instances of this column are integers.
	Integral bool

	// Min and Max allow determining whether the column is unsigned and the
	// smallest integer type which can hold all seen values.
	Min, Max float64

	// Seen tracks the unique numbers passed to this column, for detecting
	// enumerated survey-code columns. Stops growing once its size exceeds
	// MaxEnum.
	Seen map[float64]int
}

func NewNumberStats() *NumberStats {
	return &NumberStats{Seen: make(map[float64]int)}
}

func (s *NumberStats) Add(cell string) error {
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadCell, cell)
	}

	if s.Rows == 0 {
		s.Integral = isIntegral(value)
		s.Min = value
		s.Max = value
	} else {
		s.Integral = s.Integral && isIntegral(value)
		if value < s.Min {
			s.Min = value
		} else if value > s.Max {
			s.Max = value
		}
	}
	s.Rows++

	if len(s.Seen) <= MaxEnum {
		s.Seen[value]++
	}

	return nil
}

func isIntegral(f float64) bool {
	return math.Round(f) == f
}

func (s *NumberStats) String() string {
	result := strings.Builder{}

	result.WriteString(s.typeName())
	result.WriteString(";")
	if s.Integral {
		result.WriteString(fmt.Sprintf("%d;%d", int(s.Min), int(s.Max)))
	} else {
		result.WriteString(fmt.Sprintf("%f;%f", s.Min, s.Max))
	}

	if len(s.Seen) <= MaxEnum {
		result.WriteString(fmt.Sprintf(";enum %d", len(s.Seen)))
	}

	return result.String()
}

func (s *NumberStats) typeName() string {
	if !s.Integral {
		return "float64"
	}

	if s.Min < 0 {
		switch {
		case s.Max <= math.MaxInt8:
			return "int8"
		case s.Max <= math.MaxInt16:
			return "int16"
		case s.Max <= math.MaxInt32:
			return "int32"
		default:
			return "int64"
		}
	}

	switch {
	case s.Max <= math.MaxUint8:
		return "uint8"
	case s.Max <= math.MaxUint16:
		return "uint16"
	case s.Max <= math.MaxUint32:
		return "uint32"
	default:
		return "uint64"
	}
}
