package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	creationStepsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketee_creation_steps_total",
			Help: "Event creation step outcomes",
		},
		[]string{"step", "status"},
	)

	creationSubmitSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticketee_creation_submit_seconds",
			Help:    "Event creation submit latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	ticketPurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketee_ticket_purchases_total",
			Help: "Ticket purchase attempts by result",
		},
		[]string{"result"},
	)
)

// RecordCreationStep 記錄單一步驟的最終狀態
func RecordCreationStep(step, status string) {
	creationStepsTotal.WithLabelValues(step, status).Inc()
}

// RecordCreationSubmit outcome 為 completed、partial、failed 或 rejected
func RecordCreationSubmit(outcome string, duration time.Duration) {
	creationSubmitSeconds.WithLabelValues(outcome).Observe(duration.Seconds())
}

func RecordTicketPurchase(result string) {
	ticketPurchasesTotal.WithLabelValues(result).Inc()
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
