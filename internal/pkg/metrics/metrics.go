// Package metrics holds the Prometheus collectors of the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfoodie_order_transitions_total",
			Help: "Order status transitions by target status and outcome",
		},
		[]string{"target", "outcome"},
	)

	OrdersPlacedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fastfoodie_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	NotificationsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfoodie_notifications_created_total",
			Help: "Notifications written by the fan-out, by recipient role",
		},
		[]string{"role"},
	)

	NotificationsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fastfoodie_notifications_dropped_total",
			Help: "Status changes not fanned out because the queue was full",
		},
	)

	PushResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfoodie_push_results_total",
			Help: "Push deliveries by result (sent, unregistered, failed)",
		},
		[]string{"result"},
	)

	LiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fastfoodie_live_sessions",
			Help: "Open live order sessions",
		},
	)

	LiveSendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastfoodie_live_sends_total",
			Help: "Live broadcast sends by result (sent, dropped, discarded)",
		},
		[]string{"result"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Register registers every collector with the default registry. Call it once at startup.
func Register() {
	prometheus.MustRegister(OrderTransitionsTotal)
	prometheus.MustRegister(OrdersPlacedTotal)
	prometheus.MustRegister(NotificationsCreatedTotal)
	prometheus.MustRegister(NotificationsDroppedTotal)
	prometheus.MustRegister(PushResultsTotal)
	prometheus.MustRegister(LiveSessions)
	prometheus.MustRegister(LiveSendsTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}
