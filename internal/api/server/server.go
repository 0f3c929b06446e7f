// Package server binds the v1alpha1 HTTP routes to a ServerInterface implementation.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	. "github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	Health(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/info)
	GetInfo(w http.ResponseWriter, r *http.Request)
	// (POST /api/v1/estimates)
	CalculateEstimate(w http.ResponseWriter, r *http.Request)
	// (GET /api/v1/worksheets)
	ListWorksheets(w http.ResponseWriter, r *http.Request)
	// (POST /api/v1/worksheets)
	CreateWorksheet(w http.ResponseWriter, r *http.Request)
	// (DELETE /api/v1/worksheets/{id})
	DeleteWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// (GET /api/v1/worksheets/{id})
	GetWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// (POST /api/v1/worksheets/{id}/estimate)
	CalculateWorksheet(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// (PUT /api/v1/worksheets/{id}/inputs)
	UpdateWorksheetInputs(w http.ResponseWriter, r *http.Request, id openapi_types.UUID)
	// (GET /api/v1/worksheets/{id}/report)
	GetWorksheetReport(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, params GetWorksheetReportParams)
	// (POST /api/v1/worksheets/{id}/{kind})
	AddSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind)
	// (PUT /api/v1/worksheets/{id}/{kind}/{surfaceId})
	UpdateSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind, surfaceId int)
	// (DELETE /api/v1/worksheets/{id}/{kind}/{surfaceId})
	RemoveSurface(w http.ResponseWriter, r *http.Request, id openapi_types.UUID, kind SurfaceKind, surfaceId int)
}

// ServerInterfaceWrapper converts path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) Health(w http.ResponseWriter, r *http.Request) {
	siw.Handler.Health(w, r)
}

func (siw *ServerInterfaceWrapper) GetInfo(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetInfo(w, r)
}

func (siw *ServerInterfaceWrapper) CalculateEstimate(w http.ResponseWriter, r *http.Request) {
	siw.Handler.CalculateEstimate(w, r)
}

func (siw *ServerInterfaceWrapper) ListWorksheets(w http.ResponseWriter, r *http.Request) {
	siw.Handler.ListWorksheets(w, r)
}

func (siw *ServerInterfaceWrapper) CreateWorksheet(w http.ResponseWriter, r *http.Request) {
	siw.Handler.CreateWorksheet(w, r)
}

func (siw *ServerInterfaceWrapper) DeleteWorksheet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.Handler.DeleteWorksheet(w, r, id)
}

func (siw *ServerInterfaceWrapper) GetWorksheet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.Handler.GetWorksheet(w, r, id)
}

func (siw *ServerInterfaceWrapper) CalculateWorksheet(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.Handler.CalculateWorksheet(w, r, id)
}

func (siw *ServerInterfaceWrapper) UpdateWorksheetInputs(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	siw.Handler.UpdateWorksheetInputs(w, r, id)
}

func (siw *ServerInterfaceWrapper) GetWorksheetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}

	var params GetWorksheetReportParams
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: err})
		return
	}

	siw.Handler.GetWorksheetReport(w, r, id, params)
}

func (siw *ServerInterfaceWrapper) AddSurface(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	kind, ok := siw.bindKind(w, r)
	if !ok {
		return
	}
	siw.Handler.AddSurface(w, r, id, kind)
}

func (siw *ServerInterfaceWrapper) UpdateSurface(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	kind, ok := siw.bindKind(w, r)
	if !ok {
		return
	}
	surfaceId, ok := siw.bindSurfaceID(w, r)
	if !ok {
		return
	}
	siw.Handler.UpdateSurface(w, r, id, kind, surfaceId)
}

func (siw *ServerInterfaceWrapper) RemoveSurface(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.bindID(w, r)
	if !ok {
		return
	}
	kind, ok := siw.bindKind(w, r)
	if !ok {
		return
	}
	surfaceId, ok := siw.bindSurfaceID(w, r)
	if !ok {
		return
	}
	siw.Handler.RemoveSurface(w, r, id, kind, surfaceId)
}

func (siw *ServerInterfaceWrapper) bindID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return id, false
	}
	return id, true
}

func (siw *ServerInterfaceWrapper) bindKind(w http.ResponseWriter, r *http.Request) (SurfaceKind, bool) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "kind", chi.URLParam(r, "kind"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "kind", Err: err})
		return "", false
	}
	kind, ok := StringToSurfaceKind(raw)
	if !ok {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "kind", Err: fmt.Errorf("unknown surface kind %q", raw)})
		return "", false
	}
	return kind, true
}

func (siw *ServerInterfaceWrapper) bindSurfaceID(w http.ResponseWriter, r *http.Request) (int, bool) {
	var surfaceId int
	err := runtime.BindStyledParameterWithOptions("simple", "surfaceId", chi.URLParam(r, "surfaceId"), &surfaceId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "surfaceId", Err: err})
		return 0, false
	}
	return surfaceId, true
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching the API and the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: options.ErrorHandlerFunc,
	}

	base := options.BaseURL
	r.Get(base+"/health", wrapper.Health)
	r.Get(base+"/api/v1/info", wrapper.GetInfo)
	r.Post(base+"/api/v1/estimates", wrapper.CalculateEstimate)
	r.Get(base+"/api/v1/worksheets", wrapper.ListWorksheets)
	r.Post(base+"/api/v1/worksheets", wrapper.CreateWorksheet)
	r.Get(base+"/api/v1/worksheets/{id}", wrapper.GetWorksheet)
	r.Delete(base+"/api/v1/worksheets/{id}", wrapper.DeleteWorksheet)
	r.Post(base+"/api/v1/worksheets/{id}/estimate", wrapper.CalculateWorksheet)
	r.Put(base+"/api/v1/worksheets/{id}/inputs", wrapper.UpdateWorksheetInputs)
	r.Get(base+"/api/v1/worksheets/{id}/report", wrapper.GetWorksheetReport)
	r.Post(base+"/api/v1/worksheets/{id}/{kind}", wrapper.AddSurface)
	r.Put(base+"/api/v1/worksheets/{id}/{kind}/{surfaceId}", wrapper.UpdateSurface)
	r.Delete(base+"/api/v1/worksheets/{id}/{kind}/{surfaceId}", wrapper.RemoveSurface)

	return r
}
