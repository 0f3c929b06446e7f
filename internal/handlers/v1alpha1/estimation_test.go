package v1alpha1_test

import (
	"context"

	api "github.com/kubev2v/paint-planner/api/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/api/server"
	handlers "github.com/kubev2v/paint-planner/internal/handlers/v1alpha1"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func validParameters() api.EstimateParameters {
	return api.EstimateParameters{
		PrimerCoverage: 10,
		PaintCoverage:  12,
		PrimerUnitCost: 20,
		PaintUnitCost:  30,
		WorkerCount:    2,
		CoatCount:      2,
	}
}

func newHandler() *handlers.ServiceHandler {
	estimationService := service.NewEstimationService()
	return handlers.NewServiceHandler(
		estimationService,
		service.NewWorksheetService(worksheet.NewStore(10), 10, estimationService, service.NewReportService()),
	)
}

var _ = Describe("estimation handler", func() {
	var (
		handler *handlers.ServiceHandler
		ctx     context.Context
	)

	BeforeEach(func() {
		handler = newHandler()
		ctx = context.TODO()
	})

	Context("CalculateEstimate", func() {
		It("returns 200 with the result and the breakdown", func() {
			doors := []api.SurfaceDimensions{{Height: 2, Width: 1}}
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{
				Body: &api.EstimateRequest{
					Walls:      []api.SurfaceDimensions{{Height: 2.5, Width: 4}, {Height: 2.5, Width: 4}},
					Doors:      &doors,
					Parameters: validParameters(),
				},
			})
			Expect(err).To(BeNil())

			response, ok := resp.(server.CalculateEstimate200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(response.Result.PaintableArea).To(BeNumerically("~", 18, 1e-9))
			Expect(response.Result.PrimerCansNeeded).To(Equal(4))
			Expect(response.Result.PaintCansNeeded).To(Equal(3))
			Expect(response.Result.TotalCost).To(BeNumerically("~", 170, 1e-9))
			Expect(response.Breakdown).To(HaveLen(3))
			Expect(response.Breakdown[0].Name).To(Equal("Primer"))
			Expect(response.Breakdown[1].Name).To(Equal("Paint"))
			Expect(response.Breakdown[2].Name).To(Equal("Labor"))
		})

		It("returns 400 when the body is missing", func() {
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CalculateEstimate400JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("returns 400 when no wall is given", func() {
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{
				Body: &api.EstimateRequest{Walls: []api.SurfaceDimensions{}, Parameters: validParameters()},
			})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CalculateEstimate400JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("returns 400 when a dimension is negative", func() {
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{
				Body: &api.EstimateRequest{
					Walls:      []api.SurfaceDimensions{{Height: -1, Width: 4}},
					Parameters: validParameters(),
				},
			})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CalculateEstimate400JSONResponse)
			Expect(ok).To(BeTrue())
		})

		It("returns 400 when the surfaces need more cans than can be counted", func() {
			params := validParameters()
			params.PrimerCoverage = 1
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{
				Body: &api.EstimateRequest{
					Walls:      []api.SurfaceDimensions{{Height: 1e10, Width: 1e10}},
					Parameters: params,
				},
			})
			Expect(err).To(BeNil())
			badRequest, ok := resp.(server.CalculateEstimate400JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(badRequest.Message).To(ContainSubstring("out of range"))
		})

		It("returns 400 when a parameter is not positive", func() {
			params := validParameters()
			params.PaintCoverage = 0
			resp, err := handler.CalculateEstimate(ctx, server.CalculateEstimateRequestObject{
				Body: &api.EstimateRequest{
					Walls:      []api.SurfaceDimensions{{Height: 2, Width: 4}},
					Parameters: params,
				},
			})
			Expect(err).To(BeNil())
			_, ok := resp.(server.CalculateEstimate400JSONResponse)
			Expect(ok).To(BeTrue())
		})
	})

	Context("GetInfo", func() {
		It("returns the build information", func() {
			resp, err := handler.GetInfo(ctx, server.GetInfoRequestObject{})
			Expect(err).To(BeNil())
			response, ok := resp.(server.GetInfo200JSONResponse)
			Expect(ok).To(BeTrue())
			Expect(response.GoVersion).NotTo(BeEmpty())
		})
	})
})
