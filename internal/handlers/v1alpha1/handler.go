package v1alpha1

import (
	"github.com/kubev2v/paint-planner/internal/api/server"
	"github.com/kubev2v/paint-planner/internal/handlers/validator"
	"github.com/kubev2v/paint-planner/internal/service"
)

type ServiceHandler struct {
	estimationSrv *service.EstimationService
	worksheetSrv  *service.WorksheetService
	validator     *validator.Validator
}

// Make sure we conform to servers StrictServerInterface
var _ server.StrictServerInterface = (*ServiceHandler)(nil)

func NewServiceHandler(estimationService *service.EstimationService, worksheetService *service.WorksheetService) *ServiceHandler {
	v := validator.NewValidator()
	v.Register(validator.NewWorksheetValidationRules()...)

	return &ServiceHandler{
		estimationSrv: estimationService,
		worksheetSrv:  worksheetService,
		validator:     v,
	}
}
