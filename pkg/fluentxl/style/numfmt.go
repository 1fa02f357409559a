package style

import (
	"fmt"
	"sort"
)

// NumberFormat is a built-in number format id.
type NumberFormat int

// Built-in number formats.
const (
	General                             NumberFormat = 0
	Integer                             NumberFormat = 1
	Precision2                          NumberFormat = 2
	IntegerWithSeparator                NumberFormat = 3
	Precision2WithSeparator             NumberFormat = 4
	PercentInteger                      NumberFormat = 9
	PercentPrecision2                   NumberFormat = 10
	ScientificPrecision2                NumberFormat = 11
	FractionPrecision1                  NumberFormat = 12
	FractionPrecision2                  NumberFormat = 13
	DateShort                           NumberFormat = 14
	DayMonthAbbrYear2                   NumberFormat = 15
	DayMonthAbbr                        NumberFormat = 16
	MonthAbbrYear2                      NumberFormat = 17
	Hour12MinutesAmPm                   NumberFormat = 18
	Hour12MinutesSecondsAmPm            NumberFormat = 19
	Hour24Minutes                       NumberFormat = 20
	Hour24MinutesSeconds                NumberFormat = 21
	DateTimeShort                       NumberFormat = 22
	IntegerWithSeparatorAndParens       NumberFormat = 37
	IntegerWithSeparatorAndParensRed    NumberFormat = 38
	Precision2WithSeparatorAndParens    NumberFormat = 39
	Precision2WithSeparatorAndParensRed NumberFormat = 40
	MinutesSeconds                      NumberFormat = 45
	ElapsedHoursMinutesSeconds          NumberFormat = 46
	MinutesSecondsMillis1               NumberFormat = 47
	ScientificUpToHundredsPrecision1    NumberFormat = 48
	Text                                NumberFormat = 49
)

type numFmtInfo struct {
	name string
	code string
}

var numberFormats = map[NumberFormat]numFmtInfo{
	General:                             {"general", "General"},
	Integer:                             {"integer", "0"},
	Precision2:                          {"precision2", "0.00"},
	IntegerWithSeparator:                {"integer_with_separator", "#,##0"},
	Precision2WithSeparator:             {"precision2_with_separator", "#,##0.00"},
	PercentInteger:                      {"percent_integer", "0%"},
	PercentPrecision2:                   {"percent_precision2", "0.00%"},
	ScientificPrecision2:                {"scientific_precision2", "0.00E+00"},
	FractionPrecision1:                  {"fraction_precision1", "# ?/?"},
	FractionPrecision2:                  {"fraction_precision2", "# ??/??"},
	DateShort:                           {"date_short", "mm-dd-yy"},
	DayMonthAbbrYear2:                   {"day_month_abbr_year2", "d-mmm-yy"},
	DayMonthAbbr:                        {"day_month_abbr", "d-mmm"},
	MonthAbbrYear2:                      {"month_abbr_year2", "mmm-yy"},
	Hour12MinutesAmPm:                   {"hour12_minutes_am_pm", "h:mm AM/PM"},
	Hour12MinutesSecondsAmPm:            {"hour12_minutes_seconds_am_pm", "h:mm:ss AM/PM"},
	Hour24Minutes:                       {"hour24_minutes", "h:mm"},
	Hour24MinutesSeconds:                {"hour24_minutes_seconds", "h:mm:ss"},
	DateTimeShort:                       {"date_time_short", "m/d/yy h:mm"},
	IntegerWithSeparatorAndParens:       {"integer_with_separator_and_parens", "#,##0 ;(#,##0)"},
	IntegerWithSeparatorAndParensRed:    {"integer_with_separator_and_parens_red", "#,##0 ;[Red](#,##0)"},
	Precision2WithSeparatorAndParens:    {"precision2_with_separator_and_parens", "#,##0.00;(#,##0.00)"},
	Precision2WithSeparatorAndParensRed: {"precision2_with_separator_and_parens_red", "#,##0.00;[Red](#,##0.00)"},
	MinutesSeconds:                      {"minutes_seconds", "mm:ss"},
	ElapsedHoursMinutesSeconds:          {"elapsed_hours_minutes_seconds", "[h]:mm:ss"},
	MinutesSecondsMillis1:               {"minutes_seconds_millis1", "mmss.0"},
	ScientificUpToHundredsPrecision1:    {"scientific_up_to_hundreds_precision1", "##0.0E+0"},
	Text:                                {"text", "@"},
}

// Valid reports whether f is a known built-in format.
func (f NumberFormat) Valid() bool {
	_, ok := numberFormats[f]
	return ok
}

// ID returns the built-in format id.
func (f NumberFormat) ID() int {
	return int(f)
}

// Code returns the format code, or "" for an unknown id.
func (f NumberFormat) Code() string {
	return numberFormats[f].code
}

func (f NumberFormat) String() string {
	if info, ok := numberFormats[f]; ok {
		return info.name
	}
	return fmt.Sprintf("NumberFormat(%d)", int(f))
}

// ParseNumberFormat parses a format name such as "precision2" or "percent_integer".
func ParseNumberFormat(s string) (NumberFormat, error) {
	key := normalizeName(s)
	for f, info := range numberFormats {
		if info.name == key {
			return f, nil
		}
	}
	return General, fmt.Errorf("unknown number format: %q", s)
}

// LookupCode returns the built-in format whose code is exactly code.
func LookupCode(code string) (NumberFormat, bool) {
	for f, info := range numberFormats {
		if info.code == code {
			return f, true
		}
	}
	return General, false
}

// NumberFormats lists the built-in formats in id order.
func NumberFormats() []NumberFormat {
	formats := make([]NumberFormat, 0, len(numberFormats))
	for f := range numberFormats {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
