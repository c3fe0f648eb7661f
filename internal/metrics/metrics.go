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

// Store Metrics
var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMutationsTotal,
			Help: HelpTextMutationsTotal,
		},
		[]string{LabelOperation},
	)

	NotificationsQueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsQueued,
			Help: HelpTextNotificationsQueued,
		},
	)

	NotificationsDeduped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsDropped,
			Help: HelpTextNotificationsDropped,
		},
	)

	NotificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsDispatched,
			Help: HelpTextNotificationsDispatched,
		},
		[]string{LabelType},
	)

	BatchDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBatchDepth,
			Help: HelpTextBatchDepth,
		},
	)

	PersistenceWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceWrites,
			Help: HelpTextPersistenceWrites,
		},
	)

	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
	)

	ItemsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsEvicted,
			Help: HelpTextItemsEvicted,
		},
	)
)
