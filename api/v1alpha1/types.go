package v1alpha1

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for SurfaceKind.
const (
	SurfaceKindWalls   SurfaceKind = "walls"
	SurfaceKindDoors   SurfaceKind = "doors"
	SurfaceKindWindows SurfaceKind = "windows"
)

// Defines values for ReportFormat.
const (
	ReportFormatText ReportFormat = "text"
	ReportFormatCsv  ReportFormat = "csv"
	ReportFormatHtml ReportFormat = "html"
	ReportFormatXlsx ReportFormat = "xlsx"
)

// SurfaceKind names one of the three surface lists of a worksheet.
type SurfaceKind string

// ReportFormat defines model for ReportFormat.
type ReportFormat string

// Error defines model for Error.
type Error struct {
	// Message Error message
	Message string `json:"message"`

	// RequestId Request ID for tracing
	RequestId *string `json:"requestId,omitempty"`
}

// Info defines model for Info.
type Info struct {
	GitCommit  string `json:"gitCommit"`
	GitVersion string `json:"gitVersion"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

// SurfaceDimensions defines model for SurfaceDimensions.
type SurfaceDimensions struct {
	Height float64 `json:"height" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
}

// Surface defines model for Surface.
type Surface struct {
	Id     int     `json:"id"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Area   float64 `json:"area"`
}

// EstimateParameters defines model for EstimateParameters.
type EstimateParameters struct {
	PrimerCoverage float64 `json:"primerCoverage" validate:"gt=0"`
	PaintCoverage  float64 `json:"paintCoverage" validate:"gt=0"`
	PrimerUnitCost float64 `json:"primerUnitCost" validate:"gt=0"`
	PaintUnitCost  float64 `json:"paintUnitCost" validate:"gt=0"`
	WorkerCount    int     `json:"workerCount" validate:"gt=0"`
	CoatCount      int     `json:"coatCount" validate:"gt=0"`
}

// EstimateRequest defines model for EstimateRequest.
type EstimateRequest struct {
	Walls      []SurfaceDimensions `json:"walls" validate:"min=1,dive"`
	Doors      *[]SurfaceDimensions `json:"doors,omitempty" validate:"omitempty,dive"`
	Windows    *[]SurfaceDimensions `json:"windows,omitempty" validate:"omitempty,dive"`
	Parameters EstimateParameters   `json:"parameters"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Units    int     `json:"units"`
	Cost     float64 `json:"cost"`
	Hours    float64 `json:"hours"`
	Reason   *string `json:"reason,omitempty"`
}

// EstimateResult defines model for EstimateResult.
type EstimateResult struct {
	PaintableArea      float64 `json:"paintableArea"`
	PrimerVolumeNeeded float64 `json:"primerVolumeNeeded"`
	PaintVolumeNeeded  float64 `json:"paintVolumeNeeded"`
	PrimerCansNeeded   int     `json:"primerCansNeeded"`
	PaintCansNeeded    int     `json:"paintCansNeeded"`
	TotalCost          float64 `json:"totalCost"`
	TotalHoursNeeded   float64 `json:"totalHoursNeeded"`
}

// Estimate defines model for Estimate.
type Estimate struct {
	Result    EstimateResult `json:"result"`
	Breakdown []LineItem     `json:"breakdown"`
}

// WorksheetInputs defines model for WorksheetInputs. Omitted fields are left unchanged on update.
type WorksheetInputs struct {
	PrimerCoverage *float64 `json:"primerCoverage,omitempty" validate:"omitempty,gt=0"`
	PaintCoverage  *float64 `json:"paintCoverage,omitempty" validate:"omitempty,gt=0"`
	PrimerUnitCost *float64 `json:"primerUnitCost,omitempty" validate:"omitempty,gt=0"`
	PaintUnitCost  *float64 `json:"paintUnitCost,omitempty" validate:"omitempty,gt=0"`
	WorkerCount    *int     `json:"workerCount,omitempty" validate:"omitempty,gt=0"`
	CoatCount      *int     `json:"coatCount,omitempty" validate:"omitempty,gt=0"`
}

// WorksheetCreate defines model for WorksheetCreate.
type WorksheetCreate struct {
	Name    *string              `json:"name,omitempty" validate:"omitempty,max=100,worksheet_name"`
	Walls   *[]SurfaceDimensions `json:"walls,omitempty" validate:"omitempty,dive"`
	Doors   *[]SurfaceDimensions `json:"doors,omitempty" validate:"omitempty,dive"`
	Windows *[]SurfaceDimensions `json:"windows,omitempty" validate:"omitempty,dive"`
	Inputs  *WorksheetInputs     `json:"inputs,omitempty"`
}

// Worksheet defines model for Worksheet.
type Worksheet struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Walls     []Surface          `json:"walls"`
	Doors     []Surface          `json:"doors"`
	Windows   []Surface          `json:"windows"`
	Inputs    WorksheetInputs    `json:"inputs"`
	Result    *EstimateResult    `json:"result,omitempty"`
}

// WorksheetList defines model for WorksheetList.
type WorksheetList = []Worksheet

// CalculateEstimateJSONRequestBody defines body for CalculateEstimate for application/json ContentType.
type CalculateEstimateJSONRequestBody = EstimateRequest

// CreateWorksheetJSONRequestBody defines body for CreateWorksheet for application/json ContentType.
type CreateWorksheetJSONRequestBody = WorksheetCreate

// UpdateSurfaceJSONRequestBody defines body for UpdateSurface for application/json ContentType.
type UpdateSurfaceJSONRequestBody = SurfaceDimensions

// UpdateWorksheetInputsJSONRequestBody defines body for UpdateWorksheetInputs for application/json ContentType.
type UpdateWorksheetInputsJSONRequestBody = WorksheetInputs

// GetWorksheetReportParams defines parameters for GetWorksheetReport.
type GetWorksheetReportParams struct {
	Format *ReportFormat `form:"format,omitempty" json:"format,omitempty"`
}
