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

// Remote API Metrics
var (
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemoteRequestsTotal,
			Help: HelpTextRemoteRequestsTotal,
		},
		[]string{LabelOperation, LabelResult},
	)

	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRemoteRequestDuration,
			Help:    HelpTextRemoteRequestDuration,
			Buckets: RemoteLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	RemoteCallsExhausted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemoteCallsExhausted,
			Help: HelpTextRemoteCallsExhausted,
		},
		[]string{LabelOperation},
	)
)

// Reconciliation Metrics
var (
	LoopIterations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoopIterations,
			Help: HelpTextLoopIterations,
		},
		[]string{LabelKind},
	)

	LoopDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLoopDuration,
			Help:    HelpTextLoopDuration,
			Buckets: LoopLatencyBuckets,
		},
	)

	LoopRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLoopRunning,
			Help: HelpTextLoopRunning,
		},
	)

	TrackedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameTrackedItems,
			Help: HelpTextTrackedItems,
		},
	)

	RepriceOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRepriceOutcomes,
			Help: HelpTextRepriceOutcomes,
		},
		[]string{LabelKind, LabelOutcome},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelBackend, LabelResult},
	)
)
