package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Entity operation counter, labelled by entity and operation
	EntityOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_entity_operations_total",
			Help: "Total number of storage entity operations",
		},
		[]string{"entity", "operation"}, // operation: "create", "get", "list", "update", "delete", "upsert"
	)

	// AI generation counter, labelled by outcome
	AIGenerationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_ai_generations_total",
			Help: "Total number of AI text generation requests",
		},
		[]string{"outcome"}, // outcome: "success", "error", "unconfigured"
	)

	// Validation failure counter
	ValidationErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_validation_errors_total",
			Help: "Total number of request payloads rejected by schema validation",
		},
		[]string{"entity"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careerboost_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careerboost_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation: "query", "insert", "update", "delete", "upsert"
	)

	// AI provider call duration
	AIGenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerboost_ai_generation_duration_seconds",
			Help:    "Duration of generative-text provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Gauge metrics
var (
	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "careerboost_info",
			Help: "Information about the CareerBoost API",
		},
		[]string{"version", "storage"},
	)
)

func init() {
	prometheus.MustRegister(EntityOperationCounter)
	prometheus.MustRegister(AIGenerationCounter)
	prometheus.MustRegister(ValidationErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)
	prometheus.MustRegister(AIGenerationDuration)

	prometheus.MustRegister(InfoGauge)
}

// SetStorageInfo records which storage backend the process selected at start
func SetStorageInfo(backend string) {
	InfoGauge.With(prometheus.Labels{"version": "1.0.0", "storage": backend}).Set(1)
}

// RecordEntityOperation increments the operation counter for an entity
func RecordEntityOperation(entity, operation string) {
	EntityOperationCounter.With(prometheus.Labels{
		"entity":    entity,
		"operation": operation,
	}).Inc()
}

// TrackDBOperation measures a database operation duration. Use as:
//
//	defer prometheus.TrackDBOperation("insert")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
