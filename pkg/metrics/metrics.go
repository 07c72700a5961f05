package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	QuoteRequestsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_requests_created_total", Help: "Number of quote requests accepted and persisted."},
	)
	QuoteValidationRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_requests_rejected_total", Help: "Number of quote submissions rejected by validation."},
	)
	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_notifications_sent_total", Help: "Number of quote notification emails sent."},
	)
	NotificationsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_notifications_skipped_total", Help: "Number of notifications skipped because no contact address is configured."},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_notifications_failed_total", Help: "Number of notification emails that failed to send."},
	)
	NotificationsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "quote_notifications_dropped_total", Help: "Number of creation events dropped because the dispatch queue was full."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nwpolishing", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(
		QuoteRequestsCreated,
		QuoteValidationRejected,
		NotificationsSent,
		NotificationsSkipped,
		NotificationsFailed,
		NotificationsDropped,
		RateLimitAllowed,
		RateLimitRejected,
	)
}
