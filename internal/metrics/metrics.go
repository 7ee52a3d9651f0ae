package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "videotube",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "object_store",
			Name:      "uploads_total",
			Help:      "Total artifact uploads",
		},
		[]string{"kind", "status"},
	)

	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "object_store",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded",
		},
		[]string{"kind"},
	)

	ObjectStoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "object_store",
			Name:      "operations_total",
			Help:      "Total object store operations",
		},
		[]string{"operation", "status"},
	)

	// CompensationsTotal counts remote artifacts removed to undo a failed publish or update.
	CompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "publish",
			Name:      "compensating_deletes_total",
			Help:      "Compensating deletes issued after partial failures",
		},
		[]string{"status"},
	)

	PublishOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "videotube",
			Subsystem: "publish",
			Name:      "outcomes_total",
			Help:      "Terminal states reached by the publish workflow",
		},
		[]string{"state"},
	)
)

func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
