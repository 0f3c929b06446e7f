package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "paint_planner"

	estimatesTotal   = "estimates_total"
	worksheetsActive = "worksheets_active"
	paintableArea    = "paintable_area_square_meters"

	// Labels
	estimateStatusLabel = "status"
	estimateSourceLabel = "source"

	EstimateStatusComputed = "computed"
	EstimateStatusRejected = "rejected"

	EstimateSourceStateless = "stateless"
	EstimateSourceWorksheet = "worksheet"
)

var estimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      estimatesTotal,
		Help:      "number of estimate requests by outcome",
	},
	[]string{estimateSourceLabel, estimateStatusLabel},
)

var worksheetsActiveMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      worksheetsActive,
		Help:      "number of worksheets held in memory",
	},
)

var paintableAreaMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      paintableArea,
		Help:      "paintable area of computed estimates",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000},
	},
)

func IncreaseEstimatesTotalMetric(source, status string) {
	estimatesTotalMetric.With(prometheus.Labels{
		estimateSourceLabel: source,
		estimateStatusLabel: status,
	}).Inc()
}

func ObservePaintableArea(area float64) {
	paintableAreaMetric.Observe(area)
}

func UpdateWorksheetsActiveMetric(count int) {
	worksheetsActiveMetric.Set(float64(count))
}

// NewPrometheusMetricsHandler serves the default registry.
func NewPrometheusMetricsHandler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(estimatesTotalMetric)
	prometheus.MustRegister(worksheetsActiveMetric)
	prometheus.MustRegister(paintableAreaMetric)
}
