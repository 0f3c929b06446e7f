package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	. "github.com/kubev2v/paint-planner/api/v1alpha1"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type StrictHandlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (response interface{}, err error)

type StrictMiddlewareFunc func(f StrictHandlerFunc, operationID string) StrictHandlerFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

type HealthRequestObject struct{}

type HealthResponseObject interface {
	VisitHealthResponse(w http.ResponseWriter) error
}

type Health200Response struct{}

func (response Health200Response) VisitHealthResponse(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusOK)
	return nil
}

type GetInfoRequestObject struct{}

type GetInfoResponseObject interface {
	VisitGetInfoResponse(w http.ResponseWriter) error
}

type GetInfo200JSONResponse Info

func (response GetInfo200JSONResponse) VisitGetInfoResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type CalculateEstimateRequestObject struct {
	Body *CalculateEstimateJSONRequestBody
}

type CalculateEstimateResponseObject interface {
	VisitCalculateEstimateResponse(w http.ResponseWriter) error
}

type CalculateEstimate200JSONResponse Estimate

func (response CalculateEstimate200JSONResponse) VisitCalculateEstimateResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type CalculateEstimate400JSONResponse Error

func (response CalculateEstimate400JSONResponse) VisitCalculateEstimateResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type CalculateEstimate500JSONResponse Error

func (response CalculateEstimate500JSONResponse) VisitCalculateEstimateResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type ListWorksheetsRequestObject struct{}

type ListWorksheetsResponseObject interface {
	VisitListWorksheetsResponse(w http.ResponseWriter) error
}

type ListWorksheets200JSONResponse WorksheetList

func (response ListWorksheets200JSONResponse) VisitListWorksheetsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type ListWorksheets500JSONResponse Error

func (response ListWorksheets500JSONResponse) VisitListWorksheetsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type CreateWorksheetRequestObject struct {
	Body *CreateWorksheetJSONRequestBody
}

type CreateWorksheetResponseObject interface {
	VisitCreateWorksheetResponse(w http.ResponseWriter) error
}

type CreateWorksheet201JSONResponse Worksheet

func (response CreateWorksheet201JSONResponse) VisitCreateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusCreated, response)
}

type CreateWorksheet400JSONResponse Error

func (response CreateWorksheet400JSONResponse) VisitCreateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type CreateWorksheet409JSONResponse Error

func (response CreateWorksheet409JSONResponse) VisitCreateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusConflict, response)
}

type CreateWorksheet500JSONResponse Error

func (response CreateWorksheet500JSONResponse) VisitCreateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type GetWorksheetRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type GetWorksheetResponseObject interface {
	VisitGetWorksheetResponse(w http.ResponseWriter) error
}

type GetWorksheet200JSONResponse Worksheet

func (response GetWorksheet200JSONResponse) VisitGetWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type GetWorksheet404JSONResponse Error

func (response GetWorksheet404JSONResponse) VisitGetWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type GetWorksheet500JSONResponse Error

func (response GetWorksheet500JSONResponse) VisitGetWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type DeleteWorksheetRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type DeleteWorksheetResponseObject interface {
	VisitDeleteWorksheetResponse(w http.ResponseWriter) error
}

type DeleteWorksheet200JSONResponse Worksheet

func (response DeleteWorksheet200JSONResponse) VisitDeleteWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type DeleteWorksheet404JSONResponse Error

func (response DeleteWorksheet404JSONResponse) VisitDeleteWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type DeleteWorksheet500JSONResponse Error

func (response DeleteWorksheet500JSONResponse) VisitDeleteWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type CalculateWorksheetRequestObject struct {
	Id openapi_types.UUID `json:"id"`
}

type CalculateWorksheetResponseObject interface {
	VisitCalculateWorksheetResponse(w http.ResponseWriter) error
}

type CalculateWorksheet200JSONResponse Estimate

func (response CalculateWorksheet200JSONResponse) VisitCalculateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type CalculateWorksheet400JSONResponse Error

func (response CalculateWorksheet400JSONResponse) VisitCalculateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type CalculateWorksheet404JSONResponse Error

func (response CalculateWorksheet404JSONResponse) VisitCalculateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type CalculateWorksheet500JSONResponse Error

func (response CalculateWorksheet500JSONResponse) VisitCalculateWorksheetResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type UpdateWorksheetInputsRequestObject struct {
	Id   openapi_types.UUID `json:"id"`
	Body *UpdateWorksheetInputsJSONRequestBody
}

type UpdateWorksheetInputsResponseObject interface {
	VisitUpdateWorksheetInputsResponse(w http.ResponseWriter) error
}

type UpdateWorksheetInputs200JSONResponse Worksheet

func (response UpdateWorksheetInputs200JSONResponse) VisitUpdateWorksheetInputsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type UpdateWorksheetInputs400JSONResponse Error

func (response UpdateWorksheetInputs400JSONResponse) VisitUpdateWorksheetInputsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type UpdateWorksheetInputs404JSONResponse Error

func (response UpdateWorksheetInputs404JSONResponse) VisitUpdateWorksheetInputsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type UpdateWorksheetInputs500JSONResponse Error

func (response UpdateWorksheetInputs500JSONResponse) VisitUpdateWorksheetInputsResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type GetWorksheetReportRequestObject struct {
	Id     openapi_types.UUID `json:"id"`
	Params GetWorksheetReportParams
}

type GetWorksheetReportResponseObject interface {
	VisitGetWorksheetReportResponse(w http.ResponseWriter) error
}

// GetWorksheetReport200Response streams a rendered report with its own content type.
type GetWorksheetReport200Response struct {
	Body          io.Reader
	ContentType   string
	ContentLength int64
	Filename      string
}

func (response GetWorksheetReport200Response) VisitGetWorksheetReportResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", response.ContentType)
	if response.ContentLength != 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(response.ContentLength, 10))
	}
	if response.Filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", response.Filename))
	}
	w.WriteHeader(http.StatusOK)

	if closer, ok := response.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}
	_, err := io.Copy(w, response.Body)
	return err
}

type GetWorksheetReport400JSONResponse Error

func (response GetWorksheetReport400JSONResponse) VisitGetWorksheetReportResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type GetWorksheetReport404JSONResponse Error

func (response GetWorksheetReport404JSONResponse) VisitGetWorksheetReportResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type GetWorksheetReport500JSONResponse Error

func (response GetWorksheetReport500JSONResponse) VisitGetWorksheetReportResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type AddSurfaceRequestObject struct {
	Id   openapi_types.UUID `json:"id"`
	Kind SurfaceKind        `json:"kind"`
}

type AddSurfaceResponseObject interface {
	VisitAddSurfaceResponse(w http.ResponseWriter) error
}

type AddSurface201JSONResponse Worksheet

func (response AddSurface201JSONResponse) VisitAddSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusCreated, response)
}

type AddSurface400JSONResponse Error

func (response AddSurface400JSONResponse) VisitAddSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type AddSurface404JSONResponse Error

func (response AddSurface404JSONResponse) VisitAddSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type AddSurface500JSONResponse Error

func (response AddSurface500JSONResponse) VisitAddSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type UpdateSurfaceRequestObject struct {
	Id        openapi_types.UUID `json:"id"`
	Kind      SurfaceKind        `json:"kind"`
	SurfaceId int                `json:"surfaceId"`
	Body      *UpdateSurfaceJSONRequestBody
}

type UpdateSurfaceResponseObject interface {
	VisitUpdateSurfaceResponse(w http.ResponseWriter) error
}

type UpdateSurface200JSONResponse Worksheet

func (response UpdateSurface200JSONResponse) VisitUpdateSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type UpdateSurface400JSONResponse Error

func (response UpdateSurface400JSONResponse) VisitUpdateSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type UpdateSurface404JSONResponse Error

func (response UpdateSurface404JSONResponse) VisitUpdateSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type UpdateSurface500JSONResponse Error

func (response UpdateSurface500JSONResponse) VisitUpdateSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

type RemoveSurfaceRequestObject struct {
	Id        openapi_types.UUID `json:"id"`
	Kind      SurfaceKind        `json:"kind"`
	SurfaceId int                `json:"surfaceId"`
}

type RemoveSurfaceResponseObject interface {
	VisitRemoveSurfaceResponse(w http.ResponseWriter) error
}

type RemoveSurface200JSONResponse Worksheet

func (response RemoveSurface200JSONResponse) VisitRemoveSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, response)
}

type RemoveSurface400JSONResponse Error

func (response RemoveSurface400JSONResponse) VisitRemoveSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, response)
}

type RemoveSurface404JSONResponse Error

func (response RemoveSurface404JSONResponse) VisitRemoveSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, response)
}

type RemoveSurface409JSONResponse Error

func (response RemoveSurface409JSONResponse) VisitRemoveSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusConflict, response)
}

type RemoveSurface500JSONResponse Error

func (response RemoveSurface500JSONResponse) VisitRemoveSurfaceResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusInternalServerError, response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {
	Health(ctx context.Context, request HealthRequestObject) (HealthResponseObject, error)
	GetInfo(ctx context.Context, request GetInfoRequestObject) (GetInfoResponseObject, error)
	CalculateEstimate(ctx context.Context, request CalculateEstimateRequestObject) (CalculateEstimateResponseObject, error)
	ListWorksheets(ctx context.Context, request ListWorksheetsRequestObject) (ListWorksheetsResponseObject, error)
	CreateWorksheet(ctx context.Context, request CreateWorksheetRequestObject) (CreateWorksheetResponseObject, error)
	GetWorksheet(ctx context.Context, request GetWorksheetRequestObject) (GetWorksheetResponseObject, error)
	DeleteWorksheet(ctx context.Context, request DeleteWorksheetRequestObject) (DeleteWorksheetResponseObject, error)
	CalculateWorksheet(ctx context.Context, request CalculateWorksheetRequestObject) (CalculateWorksheetResponseObject, error)
	UpdateWorksheetInputs(ctx context.Context, request UpdateWorksheetInputsRequestObject) (UpdateWorksheetInputsResponseObject, error)
	GetWorksheetReport(ctx context.Context, request GetWorksheetReportRequestObject) (GetWorksheetReportResponseObject, error)
	AddSurface(ctx context.Context, request AddSurfaceRequestObject) (AddSurfaceResponseObject, error)
	UpdateSurface(ctx context.Context, request UpdateSurfaceRequestObject) (UpdateSurfaceResponseObject, error)
	RemoveSurface(ctx context.Context, request RemoveSurfaceRequestObject) (RemoveSurfaceResponseObject, error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// run applies the middlewares around handler and hands the response to visit.
func (sh *strictHandler) run(w http.ResponseWriter, r *http.Request, operationID string, request interface{},
	handler StrictHandlerFunc, visit func(response interface{}) (bool, error)) {
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, operationID)
	}

	response, err := handler(r.Context(), w, r, request)
	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
		return
	}

	ok, err := visit(response)
	switch {
	case !ok && response != nil:
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	case err != nil:
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	}
}

// decodeBody reads a JSON body into dst and reports decoding failures through the request error handler.
func (sh *strictHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return false
	}
	return true
}

func (sh *strictHandler) Health(w http.ResponseWriter, r *http.Request) {
	sh.run(w, r, "Health", HealthRequestObject{},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.Health(ctx, request.(HealthRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(HealthResponseObject); ok {
				return true, v.VisitHealthResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	sh.run(w, r, "GetInfo", GetInfoRequestObject{},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetInfo(ctx, request.(GetInfoRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(GetInfoResponseObject); ok {
				return true, v.VisitGetInfoResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) CalculateEstimate(w http.ResponseWriter, r *http.Request) {
	var request CalculateEstimateRequestObject
	var body CalculateEstimateJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "CalculateEstimate", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.CalculateEstimate(ctx, request.(CalculateEstimateRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(CalculateEstimateResponseObject); ok {
				return true, v.VisitCalculateEstimateResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) ListWorksheets(w http.ResponseWriter, r *http.Request) {
	sh.run(w, r, "ListWorksheets", ListWorksheetsRequestObject{},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.ListWorksheets(ctx, request.(ListWorksheetsRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(ListWorksheetsResponseObject); ok {
				return true, v.VisitListWorksheetsResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) CreateWorksheet(w http.ResponseWriter, r *http.Request) {
	var request CreateWorksheetRequestObject
	var body CreateWorksheetJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "CreateWorksheet", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.CreateWorksheet(ctx, request.(CreateWorksheetRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(CreateWorksheetResponseObject); ok {
				return true, v.VisitCreateWorksheetResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) GetWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	sh.run(w, r, "GetWorksheet", GetWorksheetRequestObject{Id: id},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetWorksheet(ctx, request.(GetWorksheetRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(GetWorksheetResponseObject); ok {
				return true, v.VisitGetWorksheetResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) DeleteWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	sh.run(w, r, "DeleteWorksheet", DeleteWorksheetRequestObject{Id: id},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.DeleteWorksheet(ctx, request.(DeleteWorksheetRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(DeleteWorksheetResponseObject); ok {
				return true, v.VisitDeleteWorksheetResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) CalculateWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	sh.run(w, r, "CalculateWorksheet", CalculateWorksheetRequestObject{Id: id},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.CalculateWorksheet(ctx, request.(CalculateWorksheetRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(CalculateWorksheetResponseObject); ok {
				return true, v.VisitCalculateWorksheetResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) UpdateWorksheetInputs(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	request := UpdateWorksheetInputsRequestObject{Id: id}
	var body UpdateWorksheetInputsJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "UpdateWorksheetInputs", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.UpdateWorksheetInputs(ctx, request.(UpdateWorksheetInputsRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(UpdateWorksheetInputsResponseObject); ok {
				return true, v.VisitUpdateWorksheetInputsResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) GetWorksheetReport(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, params GetWorksheetReportParams) {
	sh.run(w, r, "GetWorksheetReport", GetWorksheetReportRequestObject{Id: id, Params: params},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.GetWorksheetReport(ctx, request.(GetWorksheetReportRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(GetWorksheetReportResponseObject); ok {
				return true, v.VisitGetWorksheetReportResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) AddSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind) {
	sh.run(w, r, "AddSurface", AddSurfaceRequestObject{Id: id, Kind: kind},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.AddSurface(ctx, request.(AddSurfaceRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(AddSurfaceResponseObject); ok {
				return true, v.VisitAddSurfaceResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) UpdateSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind, surfaceId int) {
	request := UpdateSurfaceRequestObject{Id: id, Kind: kind, SurfaceId: surfaceId}
	var body UpdateSurfaceJSONRequestBody
	if !sh.decodeBody(w, r, &body) {
		return
	}
	request.Body = &body

	sh.run(w, r, "UpdateSurface", request,
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.UpdateSurface(ctx, request.(UpdateSurfaceRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(UpdateSurfaceResponseObject); ok {
				return true, v.VisitUpdateSurfaceResponse(w)
			}
			return false, nil
		})
}

func (sh *strictHandler) RemoveSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind, surfaceId int) {
	sh.run(w, r, "RemoveSurface", RemoveSurfaceRequestObject{Id: id, Kind: kind, SurfaceId: surfaceId},
		func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			return sh.ssi.RemoveSurface(ctx, request.(RemoveSurfaceRequestObject))
		},
		func(response interface{}) (bool, error) {
			if v, ok := response.(RemoveSurfaceResponseObject); ok {
				return true, v.VisitRemoveSurfaceResponse(w)
			}
			return false, nil
		})
}
