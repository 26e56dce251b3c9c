package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "mediahub"

	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "route"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "uploads_total",
			Help:      "Total media uploads by outcome",
		},
		[]string{"status"},
	)

	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "upload_bytes_total",
			Help:      "Total bytes of successfully uploaded media",
		},
	)

	DeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "media",
			Name:      "deletes_total",
			Help:      "Total media deletions by outcome",
		},
		[]string{"status"},
	)

	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Total object store operations",
		},
		[]string{"operation", "status"},
	)

	StorageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "duration_seconds",
			Help:      "Object store operation duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Metadata query duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"query", "status"},
	)

	OrphansRemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweeper",
			Name:      "orphans_removed_total",
			Help:      "Blobs removed because no metadata row referenced them",
		},
	)

	CleanupQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cleanup",
			Name:      "queued_total",
			Help:      "Object keys handed to the cleanup queue",
		},
	)
)

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusSuccess
}

// RecordRequest records an HTTP request.
func RecordRequest(method, route, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordUpload records the outcome of a media upload.
func RecordUpload(err error, bytes int64) {
	UploadsTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		UploadBytesTotal.Add(float64(bytes))
	}
}

func RecordDelete(err error) {
	DeletesTotal.WithLabelValues(statusOf(err)).Inc()
}

// RecordStorageOperation records an object store call started at start.
func RecordStorageOperation(operation string, start time.Time, err error) {
	StorageOperationsTotal.WithLabelValues(operation, statusOf(err)).Inc()
	StorageDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func RecordQuery(query string, start time.Time, err error) {
	QueryDuration.WithLabelValues(query, statusOf(err)).Observe(time.Since(start).Seconds())
}
