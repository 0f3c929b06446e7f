package mappers

import (
	"github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
)

// SurfacesFromApi converts API dimensions to surfaces. Ids are assigned by the surface list.
func SurfacesFromApi(dims []v1alpha1.SurfaceDimensions) []estimation.Surface {
	surfaces := make([]estimation.Surface, 0, len(dims))
	for _, d := range dims {
		surfaces = append(surfaces, estimation.Surface{Height: d.Height, Width: d.Width})
	}
	return surfaces
}

func optionalSurfacesFromApi(dims *[]v1alpha1.SurfaceDimensions) []estimation.Surface {
	if dims == nil {
		return nil
	}
	return SurfacesFromApi(*dims)
}

func InputsFromApi(resource v1alpha1.WorksheetInputs) worksheet.Inputs {
	return worksheet.Inputs{
		PrimerCoverage: resource.PrimerCoverage,
		PaintCoverage:  resource.PaintCoverage,
		PrimerUnitCost: resource.PrimerUnitCost,
		PaintUnitCost:  resource.PaintUnitCost,
		WorkerCount:    resource.WorkerCount,
		CoatCount:      resource.CoatCount,
	}
}

func EstimateInputFromApi(resource v1alpha1.EstimateRequest) service.EstimateInput {
	p := resource.Parameters
	return service.EstimateInput{
		Walls:   SurfacesFromApi(resource.Walls),
		Doors:   optionalSurfacesFromApi(resource.Doors),
		Windows: optionalSurfacesFromApi(resource.Windows),
		Inputs: worksheet.Inputs{
			PrimerCoverage: &p.PrimerCoverage,
			PaintCoverage:  &p.PaintCoverage,
			PrimerUnitCost: &p.PrimerUnitCost,
			PaintUnitCost:  &p.PaintUnitCost,
			WorkerCount:    &p.WorkerCount,
			CoatCount:      &p.CoatCount,
		},
	}
}

func WorksheetDocumentFromApi(resource v1alpha1.WorksheetCreate) worksheet.Document {
	doc := worksheet.Document{
		Walls:   optionalSurfacesFromApi(resource.Walls),
		Doors:   optionalSurfacesFromApi(resource.Doors),
		Windows: optionalSurfacesFromApi(resource.Windows),
	}
	if resource.Name != nil {
		doc.Name = *resource.Name
	}
	if resource.Inputs != nil {
		doc.Inputs = InputsFromApi(*resource.Inputs)
	}
	return doc
}

func KindFromApi(kind v1alpha1.SurfaceKind) worksheet.Kind {
	switch kind {
	case v1alpha1.SurfaceKindDoors:
		return worksheet.KindDoor
	case v1alpha1.SurfaceKindWindows:
		return worksheet.KindWindow
	default:
		return worksheet.KindWall
	}
}
