package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/metrics"
)

// WorksheetService edits in-memory worksheets and estimates them.
type WorksheetService struct {
	store      *worksheet.Store
	capacity   int
	estimation *EstimationService
	reports    *ReportService
	logger     *log.StructuredLogger
}

func NewWorksheetService(store *worksheet.Store, capacity int, estimation *EstimationService, reports *ReportService) *WorksheetService {
	return &WorksheetService{
		store:      store,
		capacity:   capacity,
		estimation: estimation,
		reports:    reports,
		logger:     log.NewDebugLogger("worksheet_service"),
	}
}

// Create stores a new worksheet built from doc. Lists left empty start with one zero row.
func (ws *WorksheetService) Create(ctx context.Context, doc worksheet.Document) (*worksheet.Worksheet, error) {
	tracer := ws.logger.WithContext(ctx).Operation("create_worksheet").
		WithString("name", doc.Name).
		Build()

	w, err := doc.Worksheet()
	if err != nil {
		tracer.Error(err).Log()
		return nil, NewErrInvalidInput(err.Error())
	}

	created, err := ws.store.Create(w)
	if err != nil {
		tracer.Error(err).Log()
		if errors.Is(err, worksheet.ErrCapacityExceeded) {
			return nil, NewErrCapacityExceeded(ws.capacity)
		}
		return nil, err
	}
	metrics.UpdateWorksheetsActiveMetric(ws.store.Len())

	tracer.Success().WithUUID("worksheet_id", created.ID).Log()
	return created, nil
}

func (ws *WorksheetService) Get(ctx context.Context, id uuid.UUID) (*worksheet.Worksheet, error) {
	w, err := ws.store.Get(id)
	if err != nil {
		return nil, translateWorksheetError(err, id, "", 0)
	}
	return w, nil
}

func (ws *WorksheetService) List(ctx context.Context) []*worksheet.Worksheet {
	return ws.store.List()
}

func (ws *WorksheetService) Delete(ctx context.Context, id uuid.UUID) error {
	tracer := ws.logger.WithContext(ctx).Operation("delete_worksheet").
		WithUUID("worksheet_id", id).
		Build()

	if err := ws.store.Delete(id); err != nil {
		tracer.Error(err).Log()
		return translateWorksheetError(err, id, "", 0)
	}
	metrics.UpdateWorksheetsActiveMetric(ws.store.Len())

	tracer.Success().Log()
	return nil
}

// AddSurface appends a zero-sized row to the list of the given kind.
func (ws *WorksheetService) AddSurface(ctx context.Context, id uuid.UUID, kind worksheet.Kind) (*worksheet.Worksheet, int, error) {
	tracer := ws.logger.WithContext(ctx).Operation("add_surface").
		WithUUID("worksheet_id", id).
		WithString("kind", string(kind)).
		Build()

	var surfaceID int
	w, err := ws.store.Update(id, func(w *worksheet.Worksheet) error {
		list, err := w.List(kind)
		if err != nil {
			return err
		}
		surfaceID = list.Add().ID
		return nil
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, 0, translateWorksheetError(err, id, kind, 0)
	}

	tracer.Success().WithInt("surface_id", surfaceID).Log()
	return w, surfaceID, nil
}

// UpdateSurface sets the dimensions of one row.
func (ws *WorksheetService) UpdateSurface(ctx context.Context, id uuid.UUID, kind worksheet.Kind, surfaceID int, height, width float64) (*worksheet.Worksheet, error) {
	tracer := ws.logger.WithContext(ctx).Operation("update_surface").
		WithUUID("worksheet_id", id).
		WithString("kind", string(kind)).
		WithInt("surface_id", surfaceID).
		WithFloat("height", height).
		WithFloat("width", width).
		Build()

	w, err := ws.store.Update(id, func(w *worksheet.Worksheet) error {
		list, err := w.List(kind)
		if err != nil {
			return err
		}
		_, err = list.Update(surfaceID, height, width)
		return err
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, translateWorksheetError(err, id, kind, surfaceID)
	}

	tracer.Success().Log()
	return w, nil
}

// RemoveSurface deletes one row. The last row of a list cannot be removed.
func (ws *WorksheetService) RemoveSurface(ctx context.Context, id uuid.UUID, kind worksheet.Kind, surfaceID int) (*worksheet.Worksheet, error) {
	tracer := ws.logger.WithContext(ctx).Operation("remove_surface").
		WithUUID("worksheet_id", id).
		WithString("kind", string(kind)).
		WithInt("surface_id", surfaceID).
		Build()

	var removed estimation.Surface
	w, err := ws.store.Update(id, func(w *worksheet.Worksheet) error {
		list, err := w.List(kind)
		if err != nil {
			return err
		}
		if removed, err = list.Get(surfaceID); err != nil {
			return err
		}
		return list.Remove(surfaceID)
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, translateWorksheetError(err, id, kind, surfaceID)
	}

	tracer.Success().WithFloat("removed_area", removed.Area()).Log()
	return w, nil
}

// UpdateInputs merges the given fields into the worksheet inputs. Provided values must be
// strictly positive; fields left nil keep their current value.
func (ws *WorksheetService) UpdateInputs(ctx context.Context, id uuid.UUID, inputs worksheet.Inputs) (*worksheet.Worksheet, error) {
	tracer := ws.logger.WithContext(ctx).Operation("update_inputs").
		WithUUID("worksheet_id", id).
		Build()

	if err := inputs.Validate(); err != nil {
		var inputErr *worksheet.InputError
		if errors.As(err, &inputErr) && len(inputErr.NonPositive) > 0 {
			tracer.Error(err).Log()
			return nil, NewErrInvalidInput((&worksheet.InputError{NonPositive: inputErr.NonPositive}).Error())
		}
	}

	w, err := ws.store.Update(id, func(w *worksheet.Worksheet) error {
		w.Inputs = w.Inputs.Merge(inputs)
		return nil
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, translateWorksheetError(err, id, "", 0)
	}

	tracer.Success().Log()
	return w, nil
}

// Calculate estimates the worksheet and stores the result. On failure the previous result is kept.
func (ws *WorksheetService) Calculate(ctx context.Context, id uuid.UUID) (*worksheet.Worksheet, *EstimateResult, error) {
	tracer := ws.logger.WithContext(ctx).Operation("calculate_worksheet").
		WithUUID("worksheet_id", id).
		Build()

	var estimate *EstimateResult
	w, err := ws.store.Update(id, func(w *worksheet.Worksheet) error {
		var err error
		estimate, err = ws.estimation.calculate(ctx, metrics.EstimateSourceWorksheet, EstimateInput{
			Walls:   w.Walls.Items(),
			Doors:   w.Doors.Items(),
			Windows: w.Windows.Items(),
			Inputs:  w.Inputs,
		})
		if err != nil {
			return err
		}
		result := estimate.Result
		w.Result = &result
		return nil
	})
	if err != nil {
		tracer.Error(err).Log()
		return nil, nil, translateWorksheetError(err, id, "", 0)
	}

	tracer.Success().WithFloat("total_cost", estimate.Result.TotalCost).Log()
	return w, estimate, nil
}

// Report estimates the worksheet and renders it in the given format.
func (ws *WorksheetService) Report(ctx context.Context, id uuid.UUID, format string) (*Report, error) {
	tracer := ws.logger.WithContext(ctx).Operation("worksheet_report").
		WithUUID("worksheet_id", id).
		WithString("format", format).
		Build()

	if !ws.reports.Supports(format) {
		err := NewErrUnsupportedFormat(format)
		tracer.Error(err).Log()
		return nil, err
	}

	w, estimate, err := ws.Calculate(ctx, id)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	params, err := w.Parameters()
	if err != nil {
		tracer.Error(err).Log()
		return nil, NewErrInvalidInput(err.Error())
	}

	report, err := ws.reports.GenerateReport(w, params, estimate, format)
	if err != nil {
		tracer.Error(err).Log()
		return nil, err
	}

	tracer.Success().WithInt("bytes", len(report.Content)).Log()
	return report, nil
}
