package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libraryhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "libraryhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libraryhub_booking_requests_total",
			Help: "Booking request state transitions",
		},
		[]string{"resource_type", "status"},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libraryhub_booking_conflicts_total",
			Help: "Booking conflicts detected, by call site",
		},
		[]string{"resource_type", "stage"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libraryhub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "libraryhub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordBookingRequest counts a request entering the given status.
func RecordBookingRequest(resourceType, status string) {
	BookingRequestsTotal.WithLabelValues(resourceType, status).Inc()
}

// RecordConflict counts a detected overlap; stage is "create" or "approve".
func RecordConflict(resourceType, stage string) {
	BookingConflictsTotal.WithLabelValues(resourceType, stage).Inc()
}

func RecordEmail(status string) {
	EmailsSentTotal.WithLabelValues(status).Inc()
}
