package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service/report"
	"github.com/kubev2v/paint-planner/internal/service/report/csv"
	"github.com/kubev2v/paint-planner/internal/service/report/html"
	"github.com/kubev2v/paint-planner/internal/service/report/text"
	"github.com/kubev2v/paint-planner/internal/service/report/types"
	"github.com/kubev2v/paint-planner/internal/service/report/xlsx"
	"github.com/kubev2v/paint-planner/internal/worksheet"
)

type ReportRenderer = types.ReportRenderer
type ReportFormat = types.ReportFormat
type ReportData = types.ReportData

const (
	ReportFormatText = types.ReportFormatText
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatHTML = types.ReportFormatHTML
	ReportFormatXLSX = types.ReportFormatXLSX
)

// Report is a rendered worksheet report.
type Report struct {
	Content     []byte
	ContentType string
	Filename    string
}

type ReportService struct {
	processor *report.WorksheetProcessor
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	service := &ReportService{
		processor: report.NewWorksheetProcessor(),
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, r := range []types.ReportRenderer{
		text.NewRenderer(),
		csv.NewRenderer(),
		html.NewRenderer(),
		xlsx.NewRenderer(),
	} {
		service.renderers[r.SupportedFormat()] = r
	}

	return service
}

// Formats returns the supported format names sorted alphabetically.
func (r *ReportService) Formats() []string {
	formats := make([]string, 0, len(r.renderers))
	for f := range r.renderers {
		formats = append(formats, string(f))
	}
	sort.Strings(formats)
	return formats
}

func (r *ReportService) Supports(format string) bool {
	_, exists := r.renderers[types.ReportFormat(strings.ToLower(format))]
	return exists
}

// GenerateReport renders an estimated worksheet in the requested format.
func (r *ReportService) GenerateReport(w *worksheet.Worksheet, params estimation.Parameters, estimate *EstimateResult, format string) (*Report, error) {
	renderer, exists := r.renderers[types.ReportFormat(strings.ToLower(format))]
	if !exists {
		return nil, NewErrUnsupportedFormat(format)
	}

	data := r.processor.Process(w, params, estimate.Result, estimate.Breakdown, estimate.Order)

	content, err := renderer.Render(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", renderer.SupportedFormat(), err)
	}

	return &Report{
		Content:     content,
		ContentType: renderer.ContentType(),
		Filename:    reportFilename(w, renderer.SupportedFormat()),
	}, nil
}

func reportFilename(w *worksheet.Worksheet, format types.ReportFormat) string {
	ext := string(format)
	if format == types.ReportFormatText {
		ext = "txt"
	}
	return fmt.Sprintf("paint-estimate-%s.%s", w.ID.String()[:8], ext)
}
