package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fieldmap/internal/mapping"
	"fieldmap/internal/record"
)

var errNoValues = errors.New("no non-null source values")

// composite combines the non-null source values. Null sources are
// skipped entirely rather than rendered as empty segments.
func (e *Engine) composite(row record.Row, fm *mapping.FieldMapping) *string {
	if fm.Kind() != mapping.KindComposite || len(fm.Sources) == 0 {
		e.fieldLogger(fm).Warn().Msg("composite mapping without sources, using default value")
		return fm.DefaultValue
	}

	values := make([]string, 0, len(fm.Sources))
	for _, src := range fm.Sources {
		if v := row.StringPtr(src); v != nil {
			values = append(values, *v)
		}
	}

	comb := fm.Transform.Normalize()

	switch {
	case comb == mapping.CombineConcat:
		joined := strings.Join(values, fm.Delimiter)
		return &joined

	case comb == mapping.CombineCount:
		n := strconv.Itoa(len(values))
		return &n

	case comb.IsNumeric():
		d, err := Aggregate(comb, values)
		if err != nil {
			e.fieldLogger(fm).Warn().Err(err).Str("transform", string(comb)).
				Msg("composite aggregation failed, using default value")

			return fm.DefaultValue
		}

		s := FormatNumber(d)

		return &s

	default:
		e.fieldLogger(fm).Warn().Str("transform", string(fm.Transform)).
			Msg("unknown composite transform, using default value")

		return fm.DefaultValue
	}
}

// Aggregate applies a numeric combinator to decimal strings.
func Aggregate(comb mapping.Combinator, values []string) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, errNoValues
	}

	nums := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("value %q is not numeric: %w", v, err)
		}

		nums = append(nums, d)
	}

	switch comb.Normalize() {
	case mapping.CombineSum:
		return decimal.Sum(nums[0], nums[1:]...), nil
	case mapping.CombineAverage, mapping.CombineAvg:
		return decimal.Avg(nums[0], nums[1:]...), nil
	case mapping.CombineMin:
		return decimal.Min(nums[0], nums[1:]...), nil
	case mapping.CombineMax:
		return decimal.Max(nums[0], nums[1:]...), nil
	default:
		return decimal.Zero, fmt.Errorf("%q is not a numeric transform", string(comb))
	}
}

// FormatNumber renders d in plain notation with at least one fractional
// digit, so 2000 renders as "2000.0" and 12.50 as "12.5".
func FormatNumber(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
