package service_test

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/service"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WorksheetService", func() {
	var (
		worksheetSrv *service.WorksheetService
		ctx          context.Context
	)

	newService := func(capacity int) *service.WorksheetService {
		return service.NewWorksheetService(
			worksheet.NewStore(capacity),
			capacity,
			service.NewEstimationService(),
			service.NewReportService(),
		)
	}

	BeforeEach(func() {
		worksheetSrv = newService(10)
		ctx = context.Background()
	})

	Context("create", func() {
		It("starts with one empty row per list", func() {
			w, err := worksheetSrv.Create(ctx, worksheet.Document{Name: "kitchen"})
			Expect(err).To(BeNil())
			Expect(w.Name).To(Equal("kitchen"))
			Expect(w.Walls.Len()).To(Equal(1))
			Expect(w.Doors.Len()).To(Equal(1))
			Expect(w.Windows.Len()).To(Equal(1))
			Expect(w.Result).To(BeNil())

			got, err := worksheetSrv.Get(ctx, w.ID)
			Expect(err).To(BeNil())
			Expect(got.ID).To(Equal(w.ID))
		})

		It("rejects invalid dimensions", func() {
			_, err := worksheetSrv.Create(ctx, worksheet.Document{
				Walls: []estimation.Surface{{Height: -2, Width: 1}},
			})
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())
		})

		It("fails once the capacity is reached", func() {
			worksheetSrv = newService(1)
			_, err := worksheetSrv.Create(ctx, worksheet.Document{})
			Expect(err).To(BeNil())

			_, err = worksheetSrv.Create(ctx, worksheet.Document{})
			var capacity *service.ErrCapacityExceeded
			Expect(errors.As(err, &capacity)).To(BeTrue())
		})
	})

	Context("get and delete", func() {
		It("returns not found for an unknown worksheet", func() {
			_, err := worksheetSrv.Get(ctx, uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())

			err = worksheetSrv.Delete(ctx, uuid.New())
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("lists worksheets in creation order and forgets deleted ones", func() {
			first, err := worksheetSrv.Create(ctx, worksheet.Document{Name: "first"})
			Expect(err).To(BeNil())
			second, err := worksheetSrv.Create(ctx, worksheet.Document{Name: "second"})
			Expect(err).To(BeNil())

			list := worksheetSrv.List(ctx)
			Expect(list).To(HaveLen(2))
			Expect(list[0].ID).To(Equal(first.ID))
			Expect(list[1].ID).To(Equal(second.ID))

			Expect(worksheetSrv.Delete(ctx, first.ID)).To(Succeed())
			list = worksheetSrv.List(ctx)
			Expect(list).To(HaveLen(1))
			Expect(list[0].ID).To(Equal(second.ID))
		})
	})

	Context("surfaces", func() {
		var id uuid.UUID

		BeforeEach(func() {
			w, err := worksheetSrv.Create(ctx, worksheet.Document{})
			Expect(err).To(BeNil())
			id = w.ID
		})

		It("adds, updates and removes rows", func() {
			w, surfaceID, err := worksheetSrv.AddSurface(ctx, id, worksheet.KindWall)
			Expect(err).To(BeNil())
			Expect(surfaceID).To(Equal(2))
			Expect(w.Walls.Len()).To(Equal(2))

			w, err = worksheetSrv.UpdateSurface(ctx, id, worksheet.KindWall, surfaceID, 2.5, 4)
			Expect(err).To(BeNil())
			s, err := w.Walls.Get(surfaceID)
			Expect(err).To(BeNil())
			Expect(s.Area()).To(BeNumerically("~", 10, 1e-9))

			w, err = worksheetSrv.RemoveSurface(ctx, id, worksheet.KindWall, 1)
			Expect(err).To(BeNil())
			Expect(w.Walls.Len()).To(Equal(1))
			Expect(w.Walls.Items()[0].ID).To(Equal(surfaceID))
		})

		It("keeps the last row of a list", func() {
			_, err := worksheetSrv.RemoveSurface(ctx, id, worksheet.KindDoor, 1)
			var last *service.ErrLastSurface
			Expect(errors.As(err, &last)).To(BeTrue())

			w, err := worksheetSrv.Get(ctx, id)
			Expect(err).To(BeNil())
			Expect(w.Doors.Len()).To(Equal(1))
		})

		It("reports unknown rows as not found", func() {
			_, err := worksheetSrv.UpdateSurface(ctx, id, worksheet.KindWindow, 42, 1, 1)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("window 42"))
		})

		It("rejects negative dimensions and leaves the row unchanged", func() {
			_, err := worksheetSrv.UpdateSurface(ctx, id, worksheet.KindWall, 1, -1, 3)
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())

			w, err := worksheetSrv.Get(ctx, id)
			Expect(err).To(BeNil())
			Expect(w.Walls.Items()[0].Height).To(BeZero())
		})
	})

	Context("inputs and estimate", func() {
		var id uuid.UUID

		BeforeEach(func() {
			w, err := worksheetSrv.Create(ctx, worksheet.Document{
				Name:  "bedroom",
				Walls: []estimation.Surface{{Height: 3, Width: 4}, {Height: 3, Width: 5}},
				Doors: []estimation.Surface{{Height: 2, Width: 1}},
			})
			Expect(err).To(BeNil())
			id = w.ID
		})

		It("refuses to estimate while inputs are missing", func() {
			_, _, err := worksheetSrv.Calculate(ctx, id)
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())

			w, err := worksheetSrv.Get(ctx, id)
			Expect(err).To(BeNil())
			Expect(w.Result).To(BeNil())
		})

		It("merges inputs field by field", func() {
			_, err := worksheetSrv.UpdateInputs(ctx, id, worksheet.Inputs{CoatCount: ptr(2)})
			Expect(err).To(BeNil())
			w, err := worksheetSrv.UpdateInputs(ctx, id, worksheet.Inputs{WorkerCount: ptr(3)})
			Expect(err).To(BeNil())

			Expect(*w.Inputs.CoatCount).To(Equal(2))
			Expect(*w.Inputs.WorkerCount).To(Equal(3))
			Expect(w.Inputs.PaintCoverage).To(BeNil())
		})

		It("rejects non positive inputs", func() {
			_, err := worksheetSrv.UpdateInputs(ctx, id, worksheet.Inputs{PaintCoverage: ptr(0.0)})
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("paintCoverage"))
		})

		It("stores the result and keeps it after later edits", func() {
			_, err := worksheetSrv.UpdateInputs(ctx, id, validInputs())
			Expect(err).To(BeNil())

			w, result, err := worksheetSrv.Calculate(ctx, id)
			Expect(err).To(BeNil())
			Expect(result.Result.PaintableArea).To(BeNumerically("~", 25, 1e-9))
			Expect(w.Result).ToNot(BeNil())
			Expect(*w.Result).To(Equal(result.Result))

			w, err = worksheetSrv.UpdateSurface(ctx, id, worksheet.KindWall, 1, 10, 10)
			Expect(err).To(BeNil())
			Expect(w.Result.PaintableArea).To(BeNumerically("~", 25, 1e-9))
		})

		It("rejects an estimate beyond the can range and keeps the previous result", func() {
			_, err := worksheetSrv.UpdateInputs(ctx, id, validInputs())
			Expect(err).To(BeNil())
			_, _, err = worksheetSrv.Calculate(ctx, id)
			Expect(err).To(BeNil())

			_, err = worksheetSrv.UpdateSurface(ctx, id, worksheet.KindWall, 1, 1e10, 1e10)
			Expect(err).To(BeNil())
			_, err = worksheetSrv.UpdateInputs(ctx, id, worksheet.Inputs{PrimerCoverage: ptr(1.0)})
			Expect(err).To(BeNil())

			_, _, err = worksheetSrv.Calculate(ctx, id)
			var invalid *service.ErrInvalidInput
			Expect(errors.As(err, &invalid)).To(BeTrue())

			w, err := worksheetSrv.Get(ctx, id)
			Expect(err).To(BeNil())
			Expect(w.Result.PaintableArea).To(BeNumerically("~", 25, 1e-9))
		})
	})

	Context("report", func() {
		var id uuid.UUID

		BeforeEach(func() {
			inputs := validInputs()
			w, err := worksheetSrv.Create(ctx, worksheet.Document{
				Name:   "hall",
				Walls:  []estimation.Surface{{Height: 2, Width: 5}},
				Inputs: inputs,
			})
			Expect(err).To(BeNil())
			id = w.ID
		})

		DescribeTable("renders every supported format",
			func(format, contentType string, marker []byte) {
				report, err := worksheetSrv.Report(ctx, id, format)
				Expect(err).To(BeNil())
				Expect(report.ContentType).To(HavePrefix(contentType))
				Expect(report.Filename).To(HavePrefix("paint-estimate-"))
				Expect(bytes.Contains(report.Content, marker)).To(BeTrue())
			},
			Entry("text", "text", "text/plain", []byte("Paintable area")),
			Entry("csv", "csv", "text/csv", []byte("PAINT ESTIMATE REPORT")),
			Entry("html", "html", "text/html", []byte("<h2>Results</h2>")),
			Entry("xlsx", "xlsx", "application/vnd.openxmlformats", []byte("PK")),
		)

		It("rejects unknown formats", func() {
			_, err := worksheetSrv.Report(ctx, id, "pdf")
			var unsupported *service.ErrUnsupportedFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
		})
	})
})
