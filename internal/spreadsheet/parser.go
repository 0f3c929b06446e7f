// Package spreadsheet imports worksheets from xlsx workbooks laid out like the xlsx estimate
// report: a Summary sheet of label/value rows and a Surfaces sheet with one row per surface.
package spreadsheet

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	SheetSummary  = "Summary"
	SheetSurfaces = "Surfaces"
)

// ParseWorkbook reads a workbook into a worksheet document. The Surfaces sheet is required and
// must hold at least one wall; Summary rows that are missing leave the matching input unset.
func ParseWorkbook(content []byte) (*worksheet.Document, error) {
	excelFile, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %v", err)
	}
	defer excelFile.Close()

	sheets := excelFile.GetSheetList()
	if !slices.Contains(sheets, SheetSurfaces) {
		return nil, fmt.Errorf("workbook has no %s sheet", SheetSurfaces)
	}

	doc := &worksheet.Document{}
	if err := readSurfaces(doc, readSheet(excelFile, sheets, SheetSurfaces)); err != nil {
		return nil, err
	}
	if len(doc.Walls) == 0 {
		return nil, fmt.Errorf("workbook must contain at least one wall")
	}

	if err := readSummary(doc, readSheet(excelFile, sheets, SheetSummary)); err != nil {
		return nil, err
	}

	zap.S().Named("spreadsheet").Debugf("imported %d walls, %d doors, %d windows", len(doc.Walls), len(doc.Doors), len(doc.Windows))
	return doc, nil
}

func readSurfaces(doc *worksheet.Document, rows [][]string) error {
	header, data := splitSheet(rows)
	colMap := buildColumnMap(header)
	for _, col := range []string{"kind", "height", "width"} {
		if _, ok := colMap[col]; !ok {
			return fmt.Errorf("%s sheet is missing the %q column", SheetSurfaces, col)
		}
	}

	for i, row := range data {
		if len(row) == 0 {
			continue
		}
		line := i + 2

		height, err := parseDimension(getColumnValue(row, colMap, "height"))
		if err != nil {
			return fmt.Errorf("%s row %d: height: %w", SheetSurfaces, line, err)
		}
		width, err := parseDimension(getColumnValue(row, colMap, "width"))
		if err != nil {
			return fmt.Errorf("%s row %d: width: %w", SheetSurfaces, line, err)
		}
		s := estimation.Surface{Height: height, Width: width}
		if id := getColumnValue(row, colMap, "id"); id != "" {
			if s.ID, err = strconv.Atoi(id); err != nil {
				return fmt.Errorf("%s row %d: invalid id %q", SheetSurfaces, line, id)
			}
		}

		switch kind := strings.ToLower(getColumnValue(row, colMap, "kind")); kind {
		case "walls", "wall":
			doc.Walls = append(doc.Walls, s)
		case "doors", "door":
			doc.Doors = append(doc.Doors, s)
		case "windows", "window":
			doc.Windows = append(doc.Windows, s)
		default:
			return fmt.Errorf("%s row %d: unknown surface kind %q", SheetSurfaces, line, kind)
		}
	}
	return nil
}

func readSummary(doc *worksheet.Document, rows [][]string) error {
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(row[0]))
		value := strings.TrimSpace(row[1])

		var err error
		switch label {
		case "worksheet":
			doc.Name = value
		case "primer coverage":
			doc.Inputs.PrimerCoverage, err = parseFloatPtr(value)
		case "paint coverage":
			doc.Inputs.PaintCoverage, err = parseFloatPtr(value)
		case "primer unit cost":
			doc.Inputs.PrimerUnitCost, err = parseFloatPtr(value)
		case "paint unit cost":
			doc.Inputs.PaintUnitCost, err = parseFloatPtr(value)
		case "workers":
			doc.Inputs.WorkerCount, err = parseIntPtr(value)
		case "coats":
			doc.Inputs.CoatCount, err = parseIntPtr(value)
		}
		if err != nil {
			return fmt.Errorf("%s %q: %w", SheetSummary, row[0], err)
		}
	}
	return nil
}

func readSheet(excelFile *excelize.File, sheets []string, sheetName string) [][]string {
	if !slices.Contains(sheets, sheetName) {
		return [][]string{}
	}

	rows, err := excelFile.GetRows(sheetName)
	if err != nil {
		zap.S().Named("spreadsheet").Warnf("Could not read %s sheet: %v", sheetName, err)
		return [][]string{}
	}

	return rows
}

// IsExcelFile reports whether content is a zip container that excelize can open.
func IsExcelFile(content []byte) bool {
	if len(content) < 2 {
		return false
	}

	if content[0] == 0x50 && content[1] == 0x4B {
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return false
		}
		defer f.Close()
		return true
	}

	return false
}
