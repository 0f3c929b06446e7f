package report

import (
	"time"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service/report/types"
	"github.com/kubev2v/paint-planner/internal/worksheet"
)

type WorksheetProcessor struct {
	now func() time.Time
}

func NewWorksheetProcessor() *WorksheetProcessor {
	return &WorksheetProcessor{now: time.Now}
}

// Process builds the report model for a worksheet whose inputs produced params and result.
// order lists the breakdown keys to emit; keys missing from breakdown are skipped.
func (p *WorksheetProcessor) Process(
	w *worksheet.Worksheet,
	params estimation.Parameters,
	result estimation.Result,
	breakdown map[string]estimation.Estimation,
	order []string,
) *types.ReportData {
	data := &types.ReportData{
		WorksheetID: w.ID.String(),
		Name:        w.Name,
		Inputs:      params,
		Result:      result,
		Timestamps:  p.generateTimestamps(),
	}

	for _, kind := range worksheet.Kinds {
		list, err := w.List(kind)
		if err != nil {
			continue
		}
		data.Surfaces = append(data.Surfaces, p.processSurfaces(kind, list.Items()))
	}

	for _, name := range order {
		est, ok := breakdown[name]
		if !ok {
			continue
		}
		data.Breakdown = append(data.Breakdown, types.LineItem{Name: name, Estimation: est})
	}

	return data
}

func (p *WorksheetProcessor) processSurfaces(kind worksheet.Kind, surfaces []estimation.Surface) types.SurfaceGroup {
	group := types.SurfaceGroup{
		Label: kind.Label() + "s",
		Total: estimation.TotalArea(surfaces),
	}
	for _, s := range surfaces {
		group.Rows = append(group.Rows, types.SurfaceRow{
			ID:     s.ID,
			Height: s.Height,
			Width:  s.Width,
			Area:   s.Area(),
		})
	}
	return group
}

func (p *WorksheetProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	return types.ReportTimestamps{
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05"),
	}
}
