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

// Transcoder metric names
const (
	MetricNameMenusParsed     = "menus_parsed_total"
	MetricNameMenusGenerated  = "menus_generated_total"
	MetricNameParseFailures   = "menu_parse_failures_total"
	MetricNameMenusValidated  = "menus_validated_total"
	MetricNameDocumentsOpen   = "documents_open"
	MetricNameDocumentExports = "document_exports_total"
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

// Transcoder metric help text
const (
	HelpTextMenusParsed     = "Total number of menu configurations parsed"
	HelpTextMenusGenerated  = "Total number of menu configurations generated"
	HelpTextParseFailures   = "Total number of menu parse failures"
	HelpTextMenusValidated  = "Total number of settings validation runs"
	HelpTextDocumentsOpen   = "Current number of open editor documents"
	HelpTextDocumentExports = "Total number of document YAML exports"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
)

// Parse failure reasons
const (
	ReasonEmpty   = "empty"
	ReasonGrammar = "grammar"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
