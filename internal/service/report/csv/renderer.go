package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/kubev2v/paint-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"PAINT ESTIMATE REPORT"})
	csvRows = append(csvRows, []string{"Worksheet", data.Name})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addSurfaces(csvRows, data.Surfaces)
	csvRows = r.addInputs(csvRows, data)
	csvRows = r.addResults(csvRows, data)
	csvRows = r.addBreakdown(csvRows, data.Breakdown)

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addSurfaces(csvRows [][]string, groups []types.SurfaceGroup) [][]string {
	csvRows = append(csvRows, []string{"SURFACES"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Kind", "ID", "Height", "Width", "Area"})

	for _, g := range groups {
		for _, row := range g.Rows {
			csvRows = append(csvRows, []string{
				g.Label,
				strconv.Itoa(row.ID),
				types.FormatVolume(row.Height),
				types.FormatVolume(row.Width),
				types.FormatAmount(row.Area),
			})
		}
		csvRows = append(csvRows, []string{g.Label + " total", "", "", "", types.FormatAmount(g.Total)})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addInputs(csvRows [][]string, data *types.ReportData) [][]string {
	in := data.Inputs
	csvRows = append(csvRows, []string{"INPUTS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Input", "Value"})
	csvRows = append(csvRows,
		[]string{"Primer coverage", types.FormatVolume(in.PrimerCoverage)},
		[]string{"Paint coverage", types.FormatVolume(in.PaintCoverage)},
		[]string{"Primer unit cost", types.FormatAmount(in.PrimerUnitCost)},
		[]string{"Paint unit cost", types.FormatAmount(in.PaintUnitCost)},
		[]string{"Workers", strconv.Itoa(in.WorkerCount)},
		[]string{"Coats", strconv.Itoa(in.CoatCount)},
	)
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addResults(csvRows [][]string, data *types.ReportData) [][]string {
	res := data.Result
	csvRows = append(csvRows, []string{"RESULTS"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Metric", "Value"})
	csvRows = append(csvRows,
		[]string{"Paintable area", types.FormatAmount(res.PaintableArea)},
		[]string{"Primer volume needed", types.FormatVolume(res.PrimerVolumeNeeded)},
		[]string{"Paint volume needed", types.FormatVolume(res.PaintVolumeNeeded)},
		[]string{"Primer cans needed", strconv.Itoa(res.PrimerCansNeeded)},
		[]string{"Paint cans needed", strconv.Itoa(res.PaintCansNeeded)},
		[]string{"Total cost", types.FormatAmount(res.TotalCost)},
		[]string{"Total hours needed", types.FormatAmount(res.TotalHoursNeeded)},
	)
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addBreakdown(csvRows [][]string, items []types.LineItem) [][]string {
	if len(items) == 0 {
		return csvRows
	}

	csvRows = append(csvRows, []string{"BREAKDOWN"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Item", "Quantity", "Units", "Cost", "Hours", "Reason"})
	for _, item := range items {
		csvRows = append(csvRows, []string{
			item.Name,
			types.FormatVolume(item.Quantity),
			strconv.Itoa(item.Units),
			types.FormatAmount(item.Cost),
			types.FormatAmount(item.Hours),
			item.Reason,
		})
	}

	return csvRows
}

func (r *Renderer) convertRowsToCSV(csvRows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range csvRows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}
