package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"
	"github.com/kubev2v/paint-planner/internal/service/report/types"
)

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"amount": types.FormatAmount,
		"volume": types.FormatVolume,
		"money":  formatMoney,
	}).Parse(htmlReportTemplate))

	return &Renderer{tmpl: tmpl}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

// formatMoney groups thousands and keeps two decimals.
func formatMoney(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Paint Estimate{{if .Name}} - {{.Name}}{{end}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 0; background: #f5f6fa; color: #2c3e50; }
        .container { max-width: 960px; margin: 0 auto; padding: 24px; }
        .header { background: #34495e; color: #fff; padding: 20px 24px; border-radius: 8px; }
        .summary-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px; margin: 24px 0; }
        .summary-card { background: #3498db; color: #fff; padding: 16px; border-radius: 8px; text-align: center; }
        .summary-card .number { font-size: 1.6em; font-weight: bold; }
        table { width: 100%; border-collapse: collapse; background: #fff; margin-bottom: 24px; }
        th, td { padding: 8px 12px; border-bottom: 1px solid #ecf0f1; text-align: left; }
        th { background: #ecf0f1; }
        tr.total td { font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Paint Estimate{{if .Name}}: {{.Name}}{{end}}</h1>
            <p>Generated: {{.Timestamps.Generated}} at {{.Timestamps.GeneratedTime}}</p>
        </div>

        <div class="summary-grid">
            <div class="summary-card">
                <h4>Paintable Area</h4>
                <div class="number">{{amount .Result.PaintableArea}}</div>
            </div>
            <div class="summary-card" style="background: #e67e22;">
                <h4>Cans</h4>
                <div class="number">{{.Result.PrimerCansNeeded}} + {{.Result.PaintCansNeeded}}</div>
            </div>
            <div class="summary-card" style="background: #27ae60;">
                <h4>Total Cost</h4>
                <div class="number">{{money .Result.TotalCost}}</div>
            </div>
            <div class="summary-card" style="background: #8e44ad;">
                <h4>Hours</h4>
                <div class="number">{{amount .Result.TotalHoursNeeded}}</div>
            </div>
        </div>

        <h2>Surfaces</h2>
        <table>
            <thead>
                <tr><th>Kind</th><th>ID</th><th>Height</th><th>Width</th><th>Area</th></tr>
            </thead>
            <tbody>
            {{- range .Surfaces}}
                {{- $label := .Label}}
                {{- range .Rows}}
                <tr><td>{{$label}}</td><td>{{.ID}}</td><td>{{volume .Height}}</td><td>{{volume .Width}}</td><td>{{amount .Area}}</td></tr>
                {{- end}}
                <tr class="total"><td colspan="4">{{.Label}} total</td><td>{{amount .Total}}</td></tr>
            {{- end}}
            </tbody>
        </table>

        <h2>Inputs</h2>
        <table>
            <tbody>
                <tr><td>Primer coverage</td><td>{{volume .Inputs.PrimerCoverage}}</td></tr>
                <tr><td>Paint coverage</td><td>{{volume .Inputs.PaintCoverage}}</td></tr>
                <tr><td>Primer unit cost</td><td>{{money .Inputs.PrimerUnitCost}}</td></tr>
                <tr><td>Paint unit cost</td><td>{{money .Inputs.PaintUnitCost}}</td></tr>
                <tr><td>Workers</td><td>{{.Inputs.WorkerCount}}</td></tr>
                <tr><td>Coats</td><td>{{.Inputs.CoatCount}}</td></tr>
            </tbody>
        </table>

        <h2>Results</h2>
        <table>
            <tbody>
                <tr><td>Paintable area</td><td>{{amount .Result.PaintableArea}}</td></tr>
                <tr><td>Primer volume needed</td><td>{{volume .Result.PrimerVolumeNeeded}}</td></tr>
                <tr><td>Paint volume needed</td><td>{{volume .Result.PaintVolumeNeeded}}</td></tr>
                <tr><td>Primer cans needed</td><td>{{.Result.PrimerCansNeeded}}</td></tr>
                <tr><td>Paint cans needed</td><td>{{.Result.PaintCansNeeded}}</td></tr>
                <tr class="total"><td>Total cost</td><td>{{money .Result.TotalCost}}</td></tr>
                <tr class="total"><td>Total hours needed</td><td>{{amount .Result.TotalHoursNeeded}}</td></tr>
            </tbody>
        </table>
        {{- if .Breakdown}}

        <h2>Breakdown</h2>
        <table>
            <thead>
                <tr><th>Item</th><th>Quantity</th><th>Units</th><th>Cost</th><th>Hours</th><th>Notes</th></tr>
            </thead>
            <tbody>
            {{- range .Breakdown}}
                <tr><td>{{.Name}}</td><td>{{volume .Quantity}}</td><td>{{.Units}}</td><td>{{money .Cost}}</td><td>{{amount .Hours}}</td><td>{{.Reason}}</td></tr>
            {{- end}}
            </tbody>
        </table>
        {{- end}}
    </div>
</body>
</html>
`
