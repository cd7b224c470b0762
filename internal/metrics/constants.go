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

// Remote API metric names
const (
	MetricNameRemoteRequestsTotal   = "marketbot_remote_requests_total"
	MetricNameRemoteRequestDuration = "marketbot_remote_request_duration_seconds"
	MetricNameRemoteCallsExhausted  = "marketbot_remote_calls_exhausted_total"
)

// Reconciliation metric names
const (
	MetricNameLoopIterations    = "marketbot_loop_iterations_total"
	MetricNameLoopDuration      = "marketbot_loop_iteration_duration_seconds"
	MetricNameLoopRunning       = "marketbot_loop_running"
	MetricNameTrackedItems      = "marketbot_tracked_items"
	MetricNameRepriceOutcomes   = "marketbot_reprice_outcomes_total"
	MetricNameNotificationsSent = "marketbot_notifications_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextRemoteRequestsTotal   = "Outbound requests to the marketplace and notification APIs by result"
	HelpTextRemoteRequestDuration = "Outbound request latency in seconds"
	HelpTextRemoteCallsExhausted  = "Remote calls that returned a sentinel after all attempts failed"

	HelpTextLoopIterations    = "Completed reconciliation iterations by kind"
	HelpTextLoopDuration      = "Reconciliation iteration latency in seconds"
	HelpTextLoopRunning       = "1 while the price update loop is running"
	HelpTextTrackedItems      = "Listings currently tracked in memory"
	HelpTextRepriceOutcomes   = "Per-item repricing outcomes"
	HelpTextNotificationsSent = "Notifications by backend and result"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelOutcome   = "outcome"
	LabelBackend   = "backend"
)

// Result label values
const (
	ResultOK             = "ok"
	ResultAppError       = "app_error"
	ResultTransportError = "transport_error"
	ResultFailed         = "failed"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets for the control API
	HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

	// RemoteLatencyBuckets for marketplace calls, which are slow and rate limited
	RemoteLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10}

	// LoopLatencyBuckets for whole iterations, dominated by request spacing
	LoopLatencyBuckets = []float64{.5, 1, 2.5, 5, 10, 30, 60, 120}
)
