package types

import (
	"strconv"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportData is the display model shared by every renderer.
type ReportData struct {
	WorksheetID string
	Name        string
	Surfaces    []SurfaceGroup
	Inputs      estimation.Parameters
	Result      estimation.Result
	Breakdown   []LineItem
	Timestamps  ReportTimestamps
}

type SurfaceGroup struct {
	Label string
	Rows  []SurfaceRow
	Total float64
}

type SurfaceRow struct {
	ID     int
	Height float64
	Width  float64
	Area   float64
}

type LineItem struct {
	Name string
	estimation.Estimation
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}

// FormatAmount renders areas, costs and hours with two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatVolume renders a volume without rounding.
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
