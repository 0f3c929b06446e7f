package v1alpha1

import (
	"bytes"
	"context"
	"errors"

	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/internal/handlers/v1alpha1/mappers"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/pkg/log"
	"github.com/kubev2v/paint-planner/pkg/requestid"
)

// (GET /api/v1/worksheets)
func (s *ServiceHandler) ListWorksheets(ctx context.Context, request server.ListWorksheetsRequestObject) (server.ListWorksheetsResponseObject, error) {
	worksheets := s.worksheetSrv.List(ctx)
	return server.ListWorksheets200JSONResponse(mappers.WorksheetListToApi(worksheets)), nil
}

// (POST /api/v1/worksheets)
func (s *ServiceHandler) CreateWorksheet(ctx context.Context, request server.CreateWorksheetRequestObject) (server.CreateWorksheetResponseObject, error) {
	logger := log.NewDebugLogger("worksheet_handler").
		WithContext(ctx).
		Operation("create_worksheet").
		Build()

	if request.Body == nil {
		return server.CreateWorksheet400JSONResponse{Message: "empty body", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	if err := s.validator.Struct(*request.Body); err != nil {
		logger.Error(err).Log()
		return server.CreateWorksheet400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	w, err := s.worksheetSrv.Create(ctx, mappers.WorksheetDocumentFromApi(*request.Body))
	if err != nil {
		logger.Error(err).Log()
		var invalidInput *service.ErrInvalidInput
		var capacity *service.ErrCapacityExceeded
		switch {
		case errors.As(err, &invalidInput):
			return server.CreateWorksheet400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &capacity):
			return server.CreateWorksheet409JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.CreateWorksheet500JSONResponse{Message: "failed to create worksheet", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().WithUUID("worksheet_id", w.ID).Log()
	return server.CreateWorksheet201JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (GET /api/v1/worksheets/{id})
func (s *ServiceHandler) GetWorksheet(ctx context.Context, request server.GetWorksheetRequestObject) (server.GetWorksheetResponseObject, error) {
	w, err := s.worksheetSrv.Get(ctx, request.Id)
	if err != nil {
		var notFound *service.ErrResourceNotFound
		if errors.As(err, &notFound) {
			return server.GetWorksheet404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		}
		return server.GetWorksheet500JSONResponse{Message: "failed to get worksheet", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	return server.GetWorksheet200JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (DELETE /api/v1/worksheets/{id})
func (s *ServiceHandler) DeleteWorksheet(ctx context.Context, request server.DeleteWorksheetRequestObject) (server.DeleteWorksheetResponseObject, error) {
	w, err := s.worksheetSrv.Get(ctx, request.Id)
	if err == nil {
		err = s.worksheetSrv.Delete(ctx, request.Id)
	}
	if err != nil {
		var notFound *service.ErrResourceNotFound
		if errors.As(err, &notFound) {
			return server.DeleteWorksheet404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		}
		return server.DeleteWorksheet500JSONResponse{Message: "failed to delete worksheet", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	return server.DeleteWorksheet200JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (PUT /api/v1/worksheets/{id}/inputs)
func (s *ServiceHandler) UpdateWorksheetInputs(ctx context.Context, request server.UpdateWorksheetInputsRequestObject) (server.UpdateWorksheetInputsResponseObject, error) {
	logger := log.NewDebugLogger("worksheet_handler").
		WithContext(ctx).
		Operation("update_worksheet_inputs").
		WithUUID("worksheet_id", request.Id).
		Build()

	if request.Body == nil {
		return server.UpdateWorksheetInputs400JSONResponse{Message: "empty body", RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	if err := s.validator.Struct(*request.Body); err != nil {
		logger.Error(err).Log()
		return server.UpdateWorksheetInputs400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
	}

	w, err := s.worksheetSrv.UpdateInputs(ctx, request.Id, mappers.InputsFromApi(*request.Body))
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var invalidInput *service.ErrInvalidInput
		switch {
		case errors.As(err, &notFound):
			return server.UpdateWorksheetInputs404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput):
			return server.UpdateWorksheetInputs400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.UpdateWorksheetInputs500JSONResponse{Message: "failed to update inputs", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().Log()
	return server.UpdateWorksheetInputs200JSONResponse(mappers.WorksheetToApi(w)), nil
}

// (POST /api/v1/worksheets/{id}/estimate)
func (s *ServiceHandler) CalculateWorksheet(ctx context.Context, request server.CalculateWorksheetRequestObject) (server.CalculateWorksheetResponseObject, error) {
	logger := log.NewDebugLogger("worksheet_handler").
		WithContext(ctx).
		Operation("calculate_worksheet").
		WithUUID("worksheet_id", request.Id).
		Build()

	_, result, err := s.worksheetSrv.Calculate(ctx, request.Id)
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var invalidInput *service.ErrInvalidInput
		switch {
		case errors.As(err, &notFound):
			return server.CalculateWorksheet404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput):
			return server.CalculateWorksheet400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.CalculateWorksheet500JSONResponse{Message: "failed to calculate worksheet", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().WithFloat("total_cost", result.Result.TotalCost).Log()
	return server.CalculateWorksheet200JSONResponse(mappers.EstimateToApi(result)), nil
}

// (GET /api/v1/worksheets/{id}/report)
func (s *ServiceHandler) GetWorksheetReport(ctx context.Context, request server.GetWorksheetReportRequestObject) (server.GetWorksheetReportResponseObject, error) {
	logger := log.NewDebugLogger("worksheet_handler").
		WithContext(ctx).
		Operation("get_worksheet_report").
		WithUUID("worksheet_id", request.Id).
		Build()

	format := string(service.ReportFormatText)
	if request.Params.Format != nil {
		format = string(*request.Params.Format)
	}

	report, err := s.worksheetSrv.Report(ctx, request.Id, format)
	if err != nil {
		logger.Error(err).Log()
		var notFound *service.ErrResourceNotFound
		var invalidInput *service.ErrInvalidInput
		var unsupported *service.ErrUnsupportedFormat
		switch {
		case errors.As(err, &notFound):
			return server.GetWorksheetReport404JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		case errors.As(err, &invalidInput), errors.As(err, &unsupported):
			return server.GetWorksheetReport400JSONResponse{Message: err.Error(), RequestId: requestid.FromContextPtr(ctx)}, nil
		default:
			return server.GetWorksheetReport500JSONResponse{Message: "failed to generate report", RequestId: requestid.FromContextPtr(ctx)}, nil
		}
	}

	logger.Success().WithString("format", format).WithInt("bytes", len(report.Content)).Log()
	return server.GetWorksheetReport200Response{
		Body:          bytes.NewReader(report.Content),
		ContentType:   report.ContentType,
		ContentLength: int64(len(report.Content)),
		Filename:      report.Filename,
	}, nil
}
