package v1alpha1

import (
	"context"
	"errors"
	"fmt"

	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/requestid"
)

// (POST /api/v1/estimates)
func (s *ServiceHandler) CalculateEstimate(ctx context.Context, request server.CalculateEstimateRequestObject) (server.CalculateEstimateResponseObject, error) {
	logger := log.NewDebugLogger("estimation_handler").
		WithContext(ctx).
		Operation("calculate_estimate").
		Build()

	if request.Body == nil {
		logger.Error(fmt.Errorf("empty request body")).Log()
		return server.CalculateEstimate400JSONResponse{Message: "empty body", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	if err := s.validator.Struct(*request.Body); err != nil {
		logger.Error(err).Log()
		return server.CalculateEstimate400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	input := mappers.EstimateInputFromApi(*request.Body)
	logger.Step("mapped_request").
		WithInt("walls", len(input.Walls)).
		WithInt("doors", len(input.Doors)).
		WithInt("windows", len(input.Windows)).
		Log()

	result, err := s.estimationSrv.Calculate(ctx, input)
	if err != nil {
		var invalidInput *service.ErrInvalidInput
		if errors.As(err, &invalidInput) {
			logger.Error(err).Log()
			return server.CalculateEstimate400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		}
		logger.Error(err).Log()
		return server.CalculateEstimate500JSONResponse{Message: "failed to calculate estimate", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	logger.Success().
		WithFloat("paintable_area", result.Result.PaintableArea).
		WithFloat("total_cost", result.Result.TotalCost).
		Log()

	return server.CalculateEstimate200JSONResponse(mappers.EstimateToApi(result)), nil
}
