package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pagelens_requests_total",
	Help: "NLP operation requests by operation name and outcome.",
}, []string{"operation", "status"})

func observe(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	requestsTotal.WithLabelValues(operation, status).Inc()
}
