package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Transcoder Metrics
var (
	MenusParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMenusParsed,
			Help: HelpTextMenusParsed,
		},
	)

	MenusGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMenusGenerated,
			Help: HelpTextMenusGenerated,
		},
	)

	ParseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParseFailures,
			Help: HelpTextParseFailures,
		},
		[]string{LabelReason},
	)

	MenusValidated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMenusValidated,
			Help: HelpTextMenusValidated,
		},
	)

	DocumentsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDocumentsOpen,
			Help: HelpTextDocumentsOpen,
		},
	)

	DocumentExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDocumentExports,
			Help: HelpTextDocumentExports,
		},
	)
)
