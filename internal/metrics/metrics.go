package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "walnie_events_recorded_total",
		Help: "Total number of care events upserted, labelled by canonical type.",
	}, []string{"type"})

	ValidationRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walnie_validation_rejections_total",
		Help: "Total number of write payloads rejected by the normalization pipeline.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "walnie_http_requests_total",
		Help: "Total number of handled HTTP requests, labelled by method and status.",
	}, []string{"method", "status"})
)
