package xlsx

import (
	"bytes"
	"fmt"

	"github.com/kubev2v/paint-planner/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Summary"
	SheetSurfaces  = "Surfaces"
	SheetBreakdown = "Breakdown"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if err := r.writeSummary(f, data); err != nil {
		return nil, err
	}
	if err := r.writeSurfaces(f, data.Surfaces); err != nil {
		return nil, err
	}
	if err := r.writeBreakdown(f, data.Breakdown); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(f *excelize.File, data *types.ReportData) error {
	in := data.Inputs
	res := data.Result
	rows := [][]interface{}{
		{"Worksheet", data.Name},
		{"Generated", fmt.Sprintf("%s %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
		{},
		{"Primer coverage", in.PrimerCoverage},
		{"Paint coverage", in.PaintCoverage},
		{"Primer unit cost", in.PrimerUnitCost},
		{"Paint unit cost", in.PaintUnitCost},
		{"Workers", in.WorkerCount},
		{"Coats", in.CoatCount},
		{},
		{"Paintable area", res.PaintableArea},
		{"Primer volume needed", res.PrimerVolumeNeeded},
		{"Paint volume needed", res.PaintVolumeNeeded},
		{"Primer cans needed", res.PrimerCansNeeded},
		{"Paint cans needed", res.PaintCansNeeded},
		{"Total cost", res.TotalCost},
		{"Total hours needed", res.TotalHoursNeeded},
	}
	return writeRows(f, SheetSummary, rows)
}

func (r *Renderer) writeSurfaces(f *excelize.File, groups []types.SurfaceGroup) error {
	if _, err := f.NewSheet(SheetSurfaces); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetSurfaces, err)
	}

	rows := [][]interface{}{{"Kind", "ID", "Height", "Width", "Area"}}
	for _, g := range groups {
		for _, s := range g.Rows {
			rows = append(rows, []interface{}{g.Label, s.ID, s.Height, s.Width, s.Area})
		}
	}
	return writeRows(f, SheetSurfaces, rows)
}

func (r *Renderer) writeBreakdown(f *excelize.File, items []types.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	if _, err := f.NewSheet(SheetBreakdown); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetBreakdown, err)
	}

	rows := [][]interface{}{{"Item", "Quantity", "Units", "Cost", "Hours", "Reason"}}
	for _, item := range items {
		rows = append(rows, []interface{}{item.Name, item.Quantity, item.Units, item.Cost, item.Hours, item.Reason})
	}
	return writeRows(f, SheetBreakdown, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
