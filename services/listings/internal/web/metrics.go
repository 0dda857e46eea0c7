package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	payShown   = "shown"
	payOmitted = "omitted"
)

type Metrics struct {
	payLines   *prometheus.CounterVec
	duration   *prometheus.SummaryVec
	requests   *prometheus.CounterVec
	cacheLooks *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		payLines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_pay_lines_total",
				Help: "Pay lines rendered on job cards, by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "listings_http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		cacheLooks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_cache_lookups_total",
				Help: "Listing cache lookups, by result",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) payLine(shown bool) {
	if shown {
		m.payLines.WithLabelValues(payShown).Inc()
		return
	}
	m.payLines.WithLabelValues(payOmitted).Inc()
}

func (m *Metrics) cacheLookup(result string) {
	m.cacheLooks.WithLabelValues(result).Inc()
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		m.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
