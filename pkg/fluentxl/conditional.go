package fluentxl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WhenGreaterThan formats cells whose value is greater than v.
func (r *Range) WhenGreaterThan(v interface{}, opts ...StyleOption) *Range {
	return r.whenCell(">", v, opts)
}

// WhenLessThan formats cells whose value is less than v.
func (r *Range) WhenLessThan(v interface{}, opts ...StyleOption) *Range {
	return r.whenCell("<", v, opts)
}

// WhenEqualTo formats cells whose value equals v.
func (r *Range) WhenEqualTo(v interface{}, opts ...StyleOption) *Range {
	return r.whenCell("==", v, opts)
}

// WhenNotEqualTo formats cells whose value differs from v.
func (r *Range) WhenNotEqualTo(v interface{}, opts ...StyleOption) *Range {
	return r.whenCell("!=", v, opts)
}

// WhenBetween formats cells whose value lies in [lo, hi].
func (r *Range) WhenBetween(lo, hi interface{}, opts ...StyleOption) *Range {
	return r.conditional("between", opts, func(cf *excelize.ConditionalFormatOptions) {
		cf.Type = "cell"
		cf.Criteria = "between"
		cf.MinValue = criteriaValue(lo)
		cf.MaxValue = criteriaValue(hi)
	})
}

// WhenFormula formats cells for which the formula is true. The formula is
// written relative to the range's top-left cell, without the leading "=".
func (r *Range) WhenFormula(expr string, opts ...StyleOption) *Range {
	return r.conditional("formula", opts, func(cf *excelize.ConditionalFormatOptions) {
		cf.Type = "formula"
		cf.Criteria = strings.TrimPrefix(strings.TrimSpace(expr), "=")
	})
}

// WhenDuplicate formats cells whose value occurs more than once in the range.
func (r *Range) WhenDuplicate(opts ...StyleOption) *Range {
	return r.conditional("duplicate", opts, func(cf *excelize.ConditionalFormatOptions) {
		cf.Type = "duplicate"
	})
}

func (r *Range) whenCell(criteria string, v interface{}, opts []StyleOption) *Range {
	return r.conditional(criteria, opts, func(cf *excelize.ConditionalFormatOptions) {
		cf.Type = "cell"
		cf.Criteria = criteria
		cf.Value = criteriaValue(v)
	})
}

func (r *Range) conditional(rule string, opts []StyleOption, build func(*excelize.ConditionalFormatOptions)) *Range {
	if r.err != nil {
		return r
	}
	f := r.ws.wb.f

	st := &excelize.Style{}
	for _, opt := range opts {
		if err := opt(st, f); err != nil {
			r.fail("conditional format "+rule, err)
			return r
		}
	}
	formatID, err := f.NewConditionalStyle(st)
	if err != nil {
		r.fail("conditional format "+rule, err)
		return r
	}

	cf := excelize.ConditionalFormatOptions{Format: &formatID}
	build(&cf)
	if err := f.SetConditionalFormat(r.ws.name, r.Address(), []excelize.ConditionalFormatOptions{cf}); err != nil {
		r.fail("conditional format "+rule, err)
	}
	return r
}

// criteriaValue renders v as a formula operand. Strings are quoted unless
// they already look like a formula reference or number.
func criteriaValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		if _, err := strconv.ParseFloat(x, 64); err == nil {
			return x
		}
		if strings.HasPrefix(x, "=") {
			return strings.TrimPrefix(x, "=")
		}
		return `"` + strings.ReplaceAll(x, `"`, `""`) + `"`
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strings.ToUpper(strconv.FormatBool(x))
	}
	return fmt.Sprint(v)
}
