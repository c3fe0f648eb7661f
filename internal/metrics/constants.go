package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Store metric names
const (
	MetricNameMutationsTotal         = "store_mutations_total"
	MetricNameNotificationsQueued    = "store_notifications_queued_total"
	MetricNameNotificationsDropped   = "store_notifications_deduped_total"
	MetricNameNotificationsDispatched = "store_notifications_dispatched_total"
	MetricNameBatchDepth             = "store_batch_depth"
	MetricNamePersistenceWrites      = "store_persistence_writes_total"
	MetricNamePersistenceFailures    = "store_persistence_failures_total"
	MetricNameItemsEvicted           = "store_items_evicted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Store metric help text
const (
	HelpTextMutationsTotal          = "Total number of store mutations by operation"
	HelpTextNotificationsQueued     = "Total number of notifications queued inside batches"
	HelpTextNotificationsDropped    = "Total number of notifications replaced by batch deduplication"
	HelpTextNotificationsDispatched = "Total number of notifications dispatched to the event bus"
	HelpTextBatchDepth              = "Current batch nesting depth"
	HelpTextPersistenceWrites       = "Total number of persistence gateway invocations"
	HelpTextPersistenceFailures     = "Total number of failed persistence gateway invocations"
	HelpTextItemsEvicted            = "Total number of items evicted by the inventory cap"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelType      = "type"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
