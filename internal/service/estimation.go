package service

import (
	"context"
	"fmt"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/estimation/calculators"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/metrics"
)

// EstimateInput is one stateless estimate request.
type EstimateInput struct {
	Walls   []estimation.Surface
	Doors   []estimation.Surface
	Windows []estimation.Surface
	Inputs  worksheet.Inputs
}

// EstimateResult is the estimate plus the per-calculator breakdown.
// Order lists the breakdown keys in the order the calculators ran.
type EstimateResult struct {
	Result    estimation.Result
	Breakdown map[string]estimation.Estimation
	Order     []string
}

// EstimationService validates estimate inputs and runs them through the estimation Engine.
type EstimationService struct {
	engine *estimation.Engine
	logger *log.StructuredLogger
}

// NewEstimationService creates an EstimationService with the primer, paint and labor calculators registered.
func NewEstimationService() *EstimationService {
	engine := estimation.NewEngine()

	engine.Register(calculators.NewPrimer())
	engine.Register(calculators.NewPaint())
	engine.Register(calculators.NewLabor())

	return &EstimationService{
		engine: engine,
		logger: log.NewDebugLogger("estimation_service"),
	}
}

// Calculate validates the request and returns the estimate. At least one wall is required;
// door and window lists may be empty.
func (es *EstimationService) Calculate(ctx context.Context, input EstimateInput) (*EstimateResult, error) {
	return es.calculate(ctx, metrics.EstimateSourceStateless, input)
}

func (es *EstimationService) calculate(ctx context.Context, source string, input EstimateInput) (*EstimateResult, error) {
	logger := es.logger.WithContext(ctx)
	tracer := logger.Operation("calculate_estimate").
		WithString("source", source).
		WithInt("walls", len(input.Walls)).
		WithInt("doors", len(input.Doors)).
		WithInt("windows", len(input.Windows)).
		Build()

	walls, doors, windows, err := es.validateSurfaces(input)
	if err != nil {
		metrics.IncreaseEstimatesTotalMetric(source, metrics.EstimateStatusRejected)
		tracer.Error(err).Log()
		return nil, err
	}

	params, err := input.Inputs.Parameters()
	if err != nil {
		metrics.IncreaseEstimatesTotalMetric(source, metrics.EstimateStatusRejected)
		tracer.Error(err).Log()
		return nil, NewErrInvalidInput(err.Error())
	}

	result := estimation.Estimate(walls, doors, windows, params)
	if err := result.CheckRange(); err != nil {
		metrics.IncreaseEstimatesTotalMetric(source, metrics.EstimateStatusRejected)
		tracer.Error(err).Log()
		return nil, NewErrInvalidInput(err.Error())
	}
	tracer.Step("estimated").WithFloat("paintable_area", result.PaintableArea).Log()

	breakdown := es.engine.Run(calculators.Params(result.PaintableArea, params))

	metrics.IncreaseEstimatesTotalMetric(source, metrics.EstimateStatusComputed)
	metrics.ObservePaintableArea(result.PaintableArea)

	tracer.Success().
		WithFloat("total_cost", result.TotalCost).
		WithFloat("total_hours", result.TotalHoursNeeded).
		WithInt("calculator_count", len(breakdown)).
		Log()

	return &EstimateResult{
		Result:    result,
		Breakdown: breakdown,
		Order:     es.engine.Names(),
	}, nil
}

// validateSurfaces checks every dimension through the worksheet lists so stateless and
// worksheet estimates reject the same values.
func (es *EstimationService) validateSurfaces(input EstimateInput) (walls, doors, windows []estimation.Surface, err error) {
	if len(input.Walls) == 0 {
		return nil, nil, nil, NewErrInvalidInput("at least one wall is required")
	}

	lists := []struct {
		kind     worksheet.Kind
		surfaces []estimation.Surface
		dst      *[]estimation.Surface
	}{
		{worksheet.KindWall, input.Walls, &walls},
		{worksheet.KindDoor, input.Doors, &doors},
		{worksheet.KindWindow, input.Windows, &windows},
	}
	for _, l := range lists {
		if len(l.surfaces) == 0 {
			continue
		}
		list, err := worksheet.NewSurfaceListFrom(l.surfaces)
		if err != nil {
			return nil, nil, nil, NewErrInvalidInput(fmt.Sprintf("%s: %v", l.kind, err))
		}
		*l.dst = list.Items()
	}
	return walls, doors, windows, nil
}
