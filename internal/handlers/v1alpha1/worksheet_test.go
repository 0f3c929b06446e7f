package v1alpha1_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	api "github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/api/server"
	handlers "github.com/kubev2v/paint-planner/internal/handlers/v1alpha1"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T {
	return &v
}

func validWorksheetInputs() *api.WorksheetInputs {
	return &api.WorksheetInputs{
		PrimerCoverage: ptr(10.0),
		PaintCoverage:  ptr(12.0),
		PrimerUnitCost: ptr(20.0),
		PaintUnitCost:  ptr(30.0),
		WorkerCount:    ptr(2),
		CoatCount:      ptr(2),
	}
}

var _ = Describe("worksheet handler", func() {
	var (
		handler *handlers.ServiceHandler
		ctx     context.Context
	)

	BeforeEach(func() {
		handler = newHandler()
		ctx = context.TODO()
	})

	create := func(body api.WorksheetCreate) api.Worksheet {
		resp, err := handler.CreateWorksheet(ctx, server.CreateWorksheetRequestObject{Body: &body})
		Expect(err).To(BeNil())
		created, ok := resp.(server.CreateWorksheet201JSONResponse)
		Expect(ok).To(BeTrue())
		return api.Worksheet(created)
	}

	Context("CreateWorksheet", func() {
		It("starts every list with one empty row", func() {
			w := create(api.WorksheetCreate{Name: ptr("Living room")})

			Expect(w.Name).To(Equal("Living room"))
			Expect(w.Walls).To(HaveLen(1))
			Expect(w.Doors).To(HaveLen(1))
			Expect(w.Windows).To(HaveLen(1))
			Expect(w.Walls[0].Id).To(Equal(1))
			Expect(w.Result).To(BeNil())
		})

		It("rejects a name with control characters", func() {
			body := api.WorksheetCreate{Name: ptr("bad\tname")}
			resp, err := handler.CreateWorksheet(ctx, server.CreateWorksheetRequestObject{Body: &body})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CreateWorksheet400JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("returns 409 once the store is full", func() {
			for i := 0; i < 10; i++ {
				create(api.WorksheetCreate{})
			}
			body := api.WorksheetCreate{}
			resp, err := handler.CreateWorksheet(ctx, server.CreateWorksheetRequestObject{Body: &body})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CreateWorksheet409JSONResponse)
			Expect(ok).To(BeTrue())
		})
	})

	Context("GetWorksheet and DeleteWorksheet", func() {
		It("returns 404 for an unknown worksheet", func() {
			resp, err := handler.GetWorksheet(ctx, server.GetWorksheetRequestObject{Id: uuid.New()})
			Expect(err).To(BeNil())
			_, ok := resp.(server.GetWorksheet404JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("deletes a worksheet and returns it", func() {
			w := create(api.WorksheetCreate{Name: ptr("Hall")})

			resp, err := handler.DeleteWorksheet(ctx, server.DeleteWorksheetRequestObject{Id: w.Id})
			Expect(err).To(BeNil())
			deleted, ok := resp.(server.DeleteWorksheet200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(deleted.Name).To(Equal("Hall"))

			list, err := handler.ListWorksheets(ctx, server.ListWorksheetsRequestObject{})
			Expect(err).To(BeNil())
			Expect(list.(server.ListWorksheets200JSONResponse)).To(BeEmpty())

			resp, err = handler.DeleteWorksheet(ctx, server.DeleteWorksheetRequestObject{Id: w.Id})
			Expect(err).To(BeNil())
			_, ok = resp.(server.DeleteWorksheet404JSONResponse)
			Expect(ok).To(BeTrue())
		})
	})

	Context("surfaces", func() {
		It("adds, updates and removes rows", func() {
			w := create(api.WorksheetCreate{})

			addResp, err := handler.AddSurface(ctx, server.AddSurfaceRequestObject{Id: w.Id, Kind: api.SurfaceKindWindows})
			Expect(err).To(BeNil())
			added, ok := addResp.(server.AddSurface201JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(added.Windows).To(HaveLen(2))
			Expect(added.Windows[1].Id).To(Equal(2))

			updResp, err := handler.UpdateSurface(ctx, server.UpdateSurfaceRequestObject{
				Id:        w.Id,
				Kind:      api.SurfaceKindWindows,
				SurfaceId: 2,
				Body:      &api.SurfaceDimensions{Height: 1.5, Width: 2},
			})
			Expect(err).To(BeNil())
			updated, ok := updResp.(server.UpdateSurface200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(updated.Windows[1].Area).To(BeNumerically("~", 3, 1e-9))

			rmResp, err := handler.RemoveSurface(ctx, server.RemoveSurfaceRequestObject{Id: w.Id, Kind: api.SurfaceKindWindows, SurfaceId: 1})
			Expect(err).To(BeNil())
			removed, ok := rmResp.(server.RemoveSurface200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(removed.Windows).To(HaveLen(1))
			Expect(removed.Windows[0].Id).To(Equal(2))
		})

		It("keeps the last row of a list", func() {
			w := create(api.WorksheetCreate{})

			resp, err := handler.RemoveSurface(ctx, server.RemoveSurfaceRequestObject{Id: w.Id, Kind: api.SurfaceKindDoors, SurfaceId: 1})
			Expect(err).To(BeNil())
			_, ok := resp.(server.RemoveSurface409JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("returns 404 for an unknown row", func() {
			w := create(api.WorksheetCreate{})

			resp, err := handler.UpdateSurface(ctx, server.UpdateSurfaceRequestObject{
				Id:        w.Id,
				Kind:      api.SurfaceKindWalls,
				SurfaceId: 42,
				Body:      &api.SurfaceDimensions{Height: 1, Width: 1},
			})
			Expect(err).To(BeNil())
			_, ok := resp.(server.UpdateSurface404JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("rejects negative dimensions", func() {
			w := create(api.WorksheetCreate{})

			resp, err := handler.UpdateSurface(ctx, server.UpdateSurfaceRequestObject{
				Id:        w.Id,
				Kind:      api.SurfaceKindWalls,
				SurfaceId: 1,
				Body:      &api.SurfaceDimensions{Height: -2, Width: 1},
			})
			Expect(err).To(BeNil())
			_, ok := resp.(server.UpdateSurface400JSONResponse)
			Expect(ok).To(BeTrue())
		})
	})

	Context("estimating", func() {
		It("returns 400 while inputs are missing", func() {
			w := create(api.WorksheetCreate{})

			resp, err := handler.CalculateWorksheet(ctx, server.CalculateWorksheetRequestObject{Id: w.Id})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CalculateWorksheet400JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("merges inputs and stores the result", func() {
			walls := []api.SurfaceDimensions{{Height: 2, Width: 6}, {Height: 2, Width: 6}}
			w := create(api.WorksheetCreate{Walls: &walls})

			inResp, err := handler.UpdateWorksheetInputs(ctx, server.UpdateWorksheetInputsRequestObject{Id: w.Id, Body: validWorksheetInputs()})
			Expect(err).To(BeNil())
			_, ok := inResp.(server.UpdateWorksheetInputs200JSONResponse)
			Expect(ok).To(BeTrue())

			inResp, err = handler.UpdateWorksheetInputs(ctx, server.UpdateWorksheetInputsRequestObject{
				Id:   w.Id,
				Body: &api.WorksheetInputs{WorkerCount: ptr(4)},
			})
			Expect(err).To(BeNil())
			merged, ok := inResp.(server.UpdateWorksheetInputs200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(*merged.Inputs.WorkerCount).To(Equal(4))
			Expect(*merged.Inputs.PaintCoverage).To(Equal(12.0))

			resp, err := handler.CalculateWorksheet(ctx, server.CalculateWorksheetRequestObject{Id: w.Id})
			Expect(err).To(BeNil())
			estimate, ok := resp.(server.CalculateWorksheet200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(estimate.Result.PaintableArea).To(BeNumerically("~", 24, 1e-9))
			Expect(estimate.Result.TotalCost).To(BeNumerically("~", 220, 1e-9))
			Expect(estimate.Result.TotalHoursNeeded).To(BeNumerically("~", 0.048, 1e-9))

			getResp, err := handler.GetWorksheet(ctx, server.GetWorksheetRequestObject{Id: w.Id})
			Expect(err).To(BeNil())
			stored := getResp.(server.GetWorksheet200JSONResponse)
			Expect(stored.Result).NotTo(BeNil())
			Expect(stored.Result.PrimerCansNeeded).To(Equal(5))
		})

		It("renders a csv report", func() {
			walls := []api.SurfaceDimensions{{Height: 2, Width: 6}}
			w := create(api.WorksheetCreate{Walls: &walls, Inputs: validWorksheetInputs()})

			format := api.ReportFormatCsv
			resp, err := handler.GetWorksheetReport(ctx, server.GetWorksheetReportRequestObject{
				Id:     w.Id,
				Params: api.GetWorksheetReportParams{Format: &format},
			})
			Expect(err).To(BeNil())
			report, ok := resp.(server.GetWorksheetReport200Response)
			Expect(ok).To(BeTrue())
			Expect(report.ContentType).To(HavePrefix("text/csv"))
			Expect(report.Filename).To(HaveSuffix(".csv"))

			content, err := io.ReadAll(report.Body)
			Expect(err).To(BeNil())
			Expect(string(content)).To(ContainSubstring("Walls"))
		})

		It("returns 404 for the report of an unknown worksheet", func() {
			resp, err := handler.GetWorksheetReport(ctx, server.GetWorksheetReportRequestObject{Id: uuid.New()})
			Expect(err).To(BeNil())
			_, ok := resp.(server.GetWorksheetReport404JSONResponse)
			Expect(ok).To(BeTrue())
		})
	})
})
