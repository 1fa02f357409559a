package fluentxl

import (
	"path/filepath"
	"strconv"

	"github.com/gabrov/fluentxl/pkg/fluentxl/models"
	"github.com/gabrov/fluentxl/pkg/fluentxl/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Extract reads the content of a workbook file.
func Extract(path string, opts ExtractOptions) (*models.WorkbookData, error) {
	wb, err := Open(path, DefaultOptions())
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	data, err := wb.Extract(opts)
	if err != nil {
		return nil, err
	}
	data.BookName = filepath.Base(path)
	return data, nil
}

// Extract reads the workbook content back: values, optional formulas and
// links, used range, merged ranges and print areas of every sheet.
func (wb *Workbook) Extract(opts ExtractOptions) (*models.WorkbookData, error) {
	bookName := ""
	if wb.f.Path != "" {
		bookName = filepath.Base(wb.f.Path)
	}
	data := &models.WorkbookData{
		BookName: bookName,
		Sheets:   make(map[string]models.SheetData),
	}

	cellOpts := parser.CellOptions{Formulas: opts.IncludeFormulas, Links: opts.IncludeLinks}
	for _, sheetName := range wb.f.GetSheetList() {
		sheet, err := extractSheet(wb.f, sheetName, cellOpts)
		if err != nil {
			return nil, err
		}
		data.SheetOrder = append(data.SheetOrder, sheetName)
		data.Sheets[sheetName] = sheet
	}

	if opts.ShouldIncludePrintAreas() {
		printAreas, err := parser.ExtractPrintAreas(wb.f)
		if err != nil {
			return nil, NewOperationError("", "", "print areas", err)
		}
		for sheetName, areas := range printAreas {
			if sheet, ok := data.Sheets[sheetName]; ok {
				sheet.PrintAreas = areas
				data.Sheets[sheetName] = sheet
			}
		}
	}

	wb.log.Debug("extracted workbook", zap.String("book", bookName), zap.Int("sheets", len(data.SheetOrder)))
	return data, nil
}

func extractSheet(f *excelize.File, sheetName string, opts parser.CellOptions) (models.SheetData, error) {
	rows, err := parser.ExtractCells(f, sheetName, opts)
	if err != nil {
		return models.SheetData{}, NewOperationError(sheetName, "", "cells", err)
	}

	sheet := models.SheetData{Rows: rows}

	b, ok, err := parser.UsedRange(f, sheetName)
	if err != nil {
		return models.SheetData{}, NewOperationError(sheetName, "", "used range", err)
	}
	if ok {
		if sheet.UsedRange, err = b.Ref(); err != nil {
			return models.SheetData{}, NewOperationError(sheetName, "", "used range", err)
		}
	}

	if sheet.MergedRanges, err = parser.ExtractMergedRanges(f, sheetName); err != nil {
		return models.SheetData{}, NewOperationError(sheetName, "", "merged ranges", err)
	}
	return sheet, nil
}

// PrintAreaView cuts a sheet down to the rows and columns of one print area.
func PrintAreaView(bookName, sheetName string, sheet models.SheetData, area models.PrintArea) models.PrintAreaView {
	view := models.PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		cut := models.CellRow{R: row.R, C: make(map[string]interface{})}
		for col, v := range row.C {
			if area.Contains(row.R, atoi(col)) {
				cut.C[col] = v
			}
		}
		for col, f := range row.F {
			if area.Contains(row.R, atoi(col)) {
				if cut.F == nil {
					cut.F = make(map[string]string)
				}
				cut.F[col] = f
			}
		}
		for col, link := range row.Links {
			if area.Contains(row.R, atoi(col)) {
				if cut.Links == nil {
					cut.Links = make(map[string]string)
				}
				cut.Links[col] = link
			}
		}
		if len(cut.C) > 0 {
			view.Rows = append(view.Rows, cut)
		}
	}
	return view
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
