package v1alpha1

import (
	"context"
	"errors"

	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/requestid"
)

// (POST /api/v1/worksheets/{id}/{kind})
func (s *ServiceHandler) AddSurface(ctx context.Context, request server.AddSurfaceRequestObject) (server.AddSurfaceResponseObject, error) {
	logger := log.NewDebugLogger("surface_handler").
		WithContext(ctx).
		Operation("add_surface").
		WithUUID("worksheet_id", request.Id).
		WithString("kind", string(request.Kind)).
		Build()

	w, surfaceID, err := s.worksheetSrv.AddSurface(ctx, request.Id, mappers.KindFromApi(request.Kind))
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var invalidInput *service.ErrInvalidInput
		switch {
		case errors.As(err, &notFound):
			return server.AddSurface404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput):
			return server.AddSurface400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.AddSurface500JSONResponse{Message: "failed to add surface", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().WithInt("surface_id", surfaceID).Log()
	return server.AddSurface201JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (PUT /api/v1/worksheets/{id}/{kind}/{surfaceId})
func (s *ServiceHandler) UpdateSurface(ctx context.Context, request server.UpdateSurfaceRequestObject) (server.UpdateSurfaceResponseObject, error) {
	logger := log.NewDebugLogger("surface_handler").
		WithContext(ctx).
		Operation("update_surface").
		WithUUID("worksheet_id", request.Id).
		WithString("kind", string(request.Kind)).
		WithInt("surface_id", request.SurfaceId).
		Build()

	if request.Body == nil {
		return server.UpdateSurface400JSONResponse{Message: "empty body", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	if err := s.validator.Struct(*request.Body); err != nil {
		logger.Error(err).Log()
		return server.UpdateSurface400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	w, err := s.worksheetSrv.UpdateSurface(ctx, request.Id, mappers.KindFromApi(request.Kind), request.SurfaceId, request.Body.Height, request.Body.Width)
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var invalidInput *service.ErrInvalidInput
		switch {
		case errors.As(err, &notFound):
			return server.UpdateSurface404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput):
			return server.UpdateSurface400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.UpdateSurface500JSONResponse{Message: "failed to update surface", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().Log()
	return server.UpdateSurface200JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (DELETE /api/v1/worksheets/{id}/{kind}/{surfaceId})
func (s *ServiceHandler) RemoveSurface(ctx context.Context, request server.RemoveSurfaceRequestObject) (server.RemoveSurfaceResponseObject, error) {
	logger := log.NewDebugLogger("surface_handler").
		WithContext(ctx).
		Operation("remove_surface").
		WithUUID("worksheet_id", request.Id).
		WithString("kind", string(request.Kind)).
		WithInt("surface_id", request.SurfaceId).
		Build()

	w, err := s.worksheetSrv.RemoveSurface(ctx, request.Id, mappers.KindFromApi(request.Kind), request.SurfaceId)
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var lastSurface *service.ErrLastSurface
		var invalidInput *service.ErrInvalidInput
		switch {
		case errors.As(err, &notFound):
			return server.RemoveSurface404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &lastSurface):
			return server.RemoveSurface409JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput):
			return server.RemoveSurface400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.RemoveSurface500JSONResponse{Message: "failed to remove surface", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().Log()
	return server.RemoveSurface200JSONResponse(mappers.WorksheetToApi(w)), nil
}
