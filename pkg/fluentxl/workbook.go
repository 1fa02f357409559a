package fluentxl

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Workbook wraps an excelize file.
type Workbook struct {
	f    *excelize.File
	opts Options
	log  *zap.Logger

	// placeholder is the default sheet of a new file until it is claimed by
	// AddWorksheet or Worksheet.
	placeholder string
}

// New creates an empty workbook.
func New(opts Options) *Workbook {
	f := excelize.NewFile()
	return &Workbook{
		f:           f,
		opts:        opts,
		log:         opts.logger(),
		placeholder: f.GetSheetName(0),
	}
}

// Open opens an existing workbook file.
func Open(path string, opts Options) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return wrap(f, opts), nil
}

// OpenReader reads a workbook from r.
func OpenReader(r io.Reader, opts Options) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return wrap(f, opts), nil
}

func wrap(f *excelize.File, opts Options) *Workbook {
	return &Workbook{f: f, opts: opts, log: opts.logger()}
}

// File returns the underlying excelize file.
func (wb *Workbook) File() *excelize.File {
	return wb.f
}

// AddWorksheet creates a worksheet. The first sheet added to a new workbook
// replaces its default empty sheet.
func (wb *Workbook) AddWorksheet(name string) *Worksheet {
	ws := &Worksheet{wb: wb, name: name}

	if wb.placeholder != "" {
		if err := wb.f.SetSheetName(wb.placeholder, name); err != nil {
			ws.err = NewOperationError(name, "", "add worksheet", err)
			return ws
		}
		wb.log.Debug("renamed default worksheet", zap.String("from", wb.placeholder), zap.String("to", name))
		wb.placeholder = ""
		return ws
	}

	if idx, _ := wb.f.GetSheetIndex(name); idx >= 0 {
		ws.err = NewOperationError(name, "", "add worksheet", ErrSheetExists)
		return ws
	}
	if _, err := wb.f.NewSheet(name); err != nil {
		ws.err = NewOperationError(name, "", "add worksheet", err)
		return ws
	}
	wb.log.Debug("added worksheet", zap.String("sheet", name))
	return ws
}

// Worksheet returns an existing worksheet. A missing sheet yields a
// worksheet whose Err is ErrSheetNotFound.
func (wb *Workbook) Worksheet(name string) *Worksheet {
	ws := &Worksheet{wb: wb, name: name}
	idx, err := wb.f.GetSheetIndex(name)
	if err != nil {
		ws.err = NewOperationError(name, "", "get worksheet", err)
		return ws
	}
	if idx < 0 {
		ws.err = NewOperationError(name, "", "get worksheet", ErrSheetNotFound)
		return ws
	}
	if name == wb.placeholder {
		wb.placeholder = ""
	}
	return ws
}

// SheetNames lists worksheet names in workbook order.
func (wb *Workbook) SheetNames() []string {
	return wb.f.GetSheetList()
}

// SetActive makes the named worksheet the one shown on open.
func (wb *Workbook) SetActive(name string) error {
	idx, err := wb.f.GetSheetIndex(name)
	if err != nil {
		return NewOperationError(name, "", "activate", err)
	}
	if idx < 0 {
		return NewOperationError(name, "", "activate", ErrSheetNotFound)
	}
	wb.f.SetActiveSheet(idx)
	return nil
}

// Save writes the workbook back to the file it was opened from.
func (wb *Workbook) Save() error {
	if err := wb.f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	wb.log.Debug("saved workbook", zap.String("path", wb.f.Path))
	return nil
}

// SaveAs writes the workbook to path.
func (wb *Workbook) SaveAs(path string) error {
	if err := wb.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook as %q: %w", path, err)
	}
	wb.log.Debug("saved workbook", zap.String("path", path))
	return nil
}

// WriteTo writes the workbook to w.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) {
	n, err := wb.f.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write workbook: %w", err)
	}
	return n, nil
}

// Close releases temporary files held by the workbook.
func (wb *Workbook) Close() error {
	return wb.f.Close()
}
