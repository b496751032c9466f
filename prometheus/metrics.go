package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"inventory-analytics-service/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Stock mutation metrics
	MovementsCounter prometheus.CounterVec
	AlertsCounter    prometheus.CounterVec

	// Report metrics
	ReportRunsCounter prometheus.CounterVec

	// Stock status distribution
	StockStatusGauge prometheus.GaugeVec

	// Bulk load metrics
	ImportedRowsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	MovementsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_movements_total",
			Help: "Total number of stock movements applied",
		},
		[]string{"type"},
	)

	AlertsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_alerts_generated_total",
			Help: "Total number of low-stock alerts generated",
		},
		[]string{"priority"},
	)

	ReportRunsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_report_runs_total",
			Help: "Total number of report executions",
		},
		[]string{"report"},
	)

	StockStatusGauge = *promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_stock_status_products",
			Help: "Number of active products per stock status band",
		},
		[]string{"status"},
	)

	ImportedRowsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_imported_rows_total",
			Help: "Total number of rows loaded from CSV imports",
		},
		[]string{"table"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordMovement increments the counter for applied stock movements
func RecordMovement(movementType string) {
	MovementsCounter.WithLabelValues(movementType).Inc()
}

// RecordAlert increments the counter for generated alerts
func RecordAlert(priority string) {
	AlertsCounter.WithLabelValues(priority).Inc()
}

// RecordReportRun increments the counter for report executions
func RecordReportRun(report string) {
	ReportRunsCounter.WithLabelValues(report).Inc()
}

// UpdateStockStatus sets the gauge for one stock status band
func UpdateStockStatus(status string, count float64) {
	StockStatusGauge.WithLabelValues(status).Set(count)
}

// RecordImportedRows adds loaded rows to the import counter
func RecordImportedRows(table string, count int) {
	ImportedRowsCounter.WithLabelValues(table).Add(float64(count))
}
