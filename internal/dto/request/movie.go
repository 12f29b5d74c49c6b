package request

// StreamingQuery carries the streaming listing's query-string parameters.
// Provider and Search are optional; Page is 1-based and clamped by the
// service.
type StreamingQuery struct {
	Provider string
	Search   string
	Page     int
}
