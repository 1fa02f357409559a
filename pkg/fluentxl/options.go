// Package fluentxl provides a chainable API for building spreadsheets on top
// of excelize: values, formulas, number formats and styling.
package fluentxl

import (
	"github.com/gabrov/fluentxl/pkg/fluentxl/layout"
	"go.uber.org/zap"
)

// Options configures a Workbook.
type Options struct {
	// BoundsPolicy decides what WithValues does with values that do not fit
	// the target range.
	BoundsPolicy layout.BoundsPolicy
	// Logger receives debug events. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{
		BoundsPolicy: layout.Clip,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// ExtractOptions configures what Extract reads back from a workbook.
type ExtractOptions struct {
	// IncludeFormulas includes cell formulas.
	IncludeFormulas bool
	// IncludeLinks includes cell hyperlinks.
	IncludeLinks bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to true.
	IncludePrintAreas *bool
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o ExtractOptions) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return true
}
