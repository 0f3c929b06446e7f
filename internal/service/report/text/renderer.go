package text

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/kubev2v/paint-planner/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	title := "Paint estimate"
	if data.Name != "" {
		title = fmt.Sprintf("%s: %s", title, data.Name)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Generated %s at %s\n\n", data.Timestamps.Generated, data.Timestamps.GeneratedTime)

	for _, g := range data.Surfaces {
		fmt.Fprintf(w, "%s\t%d rows\t%s\n", g.Label, len(g.Rows), types.FormatAmount(g.Total))
	}
	fmt.Fprintln(w)

	res := data.Result
	fmt.Fprintf(w, "Paintable area\t%s\n", types.FormatAmount(res.PaintableArea))
	fmt.Fprintf(w, "Primer volume needed\t%s\n", types.FormatVolume(res.PrimerVolumeNeeded))
	fmt.Fprintf(w, "Paint volume needed\t%s\n", types.FormatVolume(res.PaintVolumeNeeded))
	fmt.Fprintf(w, "Primer cans needed\t%d\n", res.PrimerCansNeeded)
	fmt.Fprintf(w, "Paint cans needed\t%d\n", res.PaintCansNeeded)
	fmt.Fprintf(w, "Total cost\t%s\n", types.FormatAmount(res.TotalCost))
	fmt.Fprintf(w, "Total hours needed\t%s\n", types.FormatAmount(res.TotalHoursNeeded))

	if len(data.Breakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "ITEM\tQUANTITY\tUNITS\tCOST\tHOURS\tNOTES")
		for _, item := range data.Breakdown {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", item.Name, types.FormatVolume(item.Quantity),
				item.Units, types.FormatAmount(item.Cost), types.FormatAmount(item.Hours), item.Reason)
		}
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush text report: %w", err)
	}
	return buf.Bytes(), nil
}
