package service_test

import (
	"context"
	"errors"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ptr[T any](v T) *T {
	return &v
}

func validInputs() worksheet.Inputs {
	return worksheet.Inputs{
		PrimerCoverage: ptr(10.0),
		PaintCoverage:  ptr(12.0),
		PrimerUnitCost: ptr(20.0),
		PaintUnitCost:  ptr(30.0),
		WorkerCount:    ptr(2),
		CoatCount:      ptr(2),
	}
}

var _ = Describe("EstimationService", func() {
	var (
		estimationSrv *service.EstimationService
		ctx           context.Context
	)

	BeforeEach(func() {
		estimationSrv = service.NewEstimationService()
		ctx = context.Background()
	})

	Describe("Calculate", func() {
		It("computes the estimate and the breakdown", func() {
			result, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:   []estimation.Surface{{Height: 3, Width: 4}, {Height: 3, Width: 5}},
				Doors:   []estimation.Surface{{Height: 2, Width: 1}},
				Windows: []estimation.Surface{{Height: 1, Width: 1}},
				Inputs:  validInputs(),
			})
			Expect(err).To(BeNil())

			Expect(result.Result.PaintableArea).To(BeNumerically("~", 24, 1e-9))
			Expect(result.Result.PrimerVolumeNeeded).To(BeNumerically("~", 4.8, 1e-9))
			Expect(result.Result.PaintVolumeNeeded).To(BeNumerically("~", 4.0, 1e-9))
			Expect(result.Result.PrimerCansNeeded).To(Equal(5))
			Expect(result.Result.PaintCansNeeded).To(Equal(4))
			Expect(result.Result.TotalCost).To(BeNumerically("~", 220, 1e-9))
			Expect(result.Result.TotalHoursNeeded).To(BeNumerically("~", 0.096, 1e-9))

			Expect(result.Order).To(Equal([]string{"Primer", "Paint", "Labor"}))
			Expect(result.Breakdown).To(HaveLen(3))
			Expect(result.Breakdown["Primer"].Units).To(Equal(5))
			Expect(result.Breakdown["Paint"].Cost).To(BeNumerically("~", 120, 1e-9))
			Expect(result.Breakdown["Labor"].Hours).To(BeNumerically("~", 0.096, 1e-9))
		})

		It("accepts empty door and window lists", func() {
			result, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:  []estimation.Surface{{Height: 2, Width: 5}},
				Inputs: validInputs(),
			})
			Expect(err).To(BeNil())
			Expect(result.Result.PaintableArea).To(BeNumerically("~", 10, 1e-9))
		})

		It("rejects surfaces whose volume exceeds the can range", func() {
			inputs := validInputs()
			inputs.PrimerCoverage = ptr(1.0)
			inputs.CoatCount = ptr(1)

			result, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:  []estimation.Surface{{Height: 1e10, Width: 1e10}},
				Inputs: inputs,
			})
			Expect(result).To(BeNil())
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("out of range"))
		})

		It("rejects a tiny coverage that blows up the volume", func() {
			inputs := validInputs()
			inputs.PaintCoverage = ptr(1e-300)

			_, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:  []estimation.Surface{{Height: 3, Width: 4}},
				Inputs: inputs,
			})
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("keeps a negative paintable area", func() {
			result, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:  []estimation.Surface{{Height: 1, Width: 1}},
				Doors:  []estimation.Surface{{Height: 2, Width: 2}},
				Inputs: validInputs(),
			})
			Expect(err).To(BeNil())
			Expect(result.Result.PaintableArea).To(BeNumerically("~", -3, 1e-9))
			Expect(result.Result.PrimerCansNeeded).To(BeNumerically("<=", 0))
		})

		It("rejects a request without walls", func() {
			_, err := estimationSrv.Calculate(ctx, service.EstimateInput{Inputs: validInputs()})
			Expect(err).ToNot(BeNil())
			_, ok := err.(*service.ErrInvalidInput)
			Expect(ok).To(BeTrue())
		})

		It("rejects negative dimensions", func() {
			_, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:   []estimation.Surface{{Height: 3, Width: 4}},
				Windows: []estimation.Surface{{Height: -1, Width: 1}},
				Inputs:  validInputs(),
			})
			Expect(err).ToNot(BeNil())
			Expect(err.Error()).To(ContainSubstring("window"))
		})

		It("names every missing or non positive input", func() {
			inputs := validInputs()
			inputs.PaintCoverage = nil
			inputs.WorkerCount = ptr(0)

			_, err := estimationSrv.Calculate(ctx, service.EstimateInput{
				Walls:  []estimation.Surface{{Height: 3, Width: 4}},
				Inputs: inputs,
			})
			Expect(err).ToNot(BeNil())
			_, ok := err.(*service.ErrInvalidInput)
			Expect(ok).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("paintCoverage"))
			Expect(err.Error()).To(ContainSubstring("workerCount"))
		})
	})
})
