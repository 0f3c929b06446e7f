package mappers

import (
	"github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
)

func SurfacesToApi(surfaces []estimation.Surface) []v1alpha1.Surface {
	res := make([]v1alpha1.Surface, 0, len(surfaces))
	for _, s := range surfaces {
		res = append(res, v1alpha1.Surface{
			Id:     s.ID,
			Height: s.Height,
			Width:  s.Width,
			Area:   s.Area(),
		})
	}
	return res
}

func InputsToApi(in worksheet.Inputs) v1alpha1.WorksheetInputs {
	return v1alpha1.WorksheetInputs{
		PrimerCoverage: in.PrimerCoverage,
		PaintCoverage:  in.PaintCoverage,
		PrimerUnitCost: in.PrimerUnitCost,
		PaintUnitCost:  in.PaintUnitCost,
		WorkerCount:    in.WorkerCount,
		CoatCount:      in.CoatCount,
	}
}

func ResultToApi(r estimation.Result) v1alpha1.EstimateResult {
	return v1alpha1.EstimateResult{
		PaintableArea:      r.PaintableArea,
		PrimerVolumeNeeded: r.PrimerVolumeNeeded,
		PaintVolumeNeeded:  r.PaintVolumeNeeded,
		PrimerCansNeeded:   r.PrimerCansNeeded,
		PaintCansNeeded:    r.PaintCansNeeded,
		TotalCost:          r.TotalCost,
		TotalHoursNeeded:   r.TotalHoursNeeded,
	}
}

// EstimateToApi keeps the breakdown in calculator order.
func EstimateToApi(e *service.EstimateResult) v1alpha1.Estimate {
	breakdown := make([]v1alpha1.LineItem, 0, len(e.Order))
	for _, name := range e.Order {
		est, ok := e.Breakdown[name]
		if !ok {
			continue
		}
		item := v1alpha1.LineItem{
			Name:     name,
			Quantity: est.Quantity,
			Units:    est.Units,
			Cost:     est.Cost,
			Hours:    est.Hours,
		}
		if est.Reason != "" {
			reason := est.Reason
			item.Reason = &reason
		}
		breakdown = append(breakdown, item)
	}

	return v1alpha1.Estimate{
		Result:    ResultToApi(e.Result),
		Breakdown: breakdown,
	}
}

func WorksheetToApi(w *worksheet.Worksheet) v1alpha1.Worksheet {
	ws := v1alpha1.Worksheet{
		Id:        w.ID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Walls:     SurfacesToApi(w.Walls.Items()),
		Doors:     SurfacesToApi(w.Doors.Items()),
		Windows:   SurfacesToApi(w.Windows.Items()),
		Inputs:    InputsToApi(w.Inputs),
	}
	if w.Result != nil {
		result := ResultToApi(*w.Result)
		ws.Result = &result
	}
	return ws
}

func WorksheetListToApi(worksheets []*worksheet.Worksheet) v1alpha1.WorksheetList {
	list := make(v1alpha1.WorksheetList, 0, len(worksheets))
	for _, w := range worksheets {
		list = append(list, WorksheetToApi(w))
	}
	return list
}
