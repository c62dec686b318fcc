package capture

import "encoding/json"

// Capture is one fully loaded HAR document plus metadata about the file
// it came from. The file metadata (size, content hash) is used by the
// report to identify exactly which recordings were compared.
type Capture struct {
	// Path the capture was loaded from.
	Path string

	// Size of the file in bytes.
	Size int64

	// Hash is the xxhash of the raw file content, hex encoded.
	Hash string

	// Log is the decoded HAR log.
	Log Log
}

// document is the HAR root as it appears on disk.
type document struct {
	Log Log `json:"log"`
}

// Log represents a set of HTTP request/response entries.
type Log struct {
	// Version of the HAR log.
	Version string `json:"version,omitempty"`

	// Creator of this set of log entries.
	Creator *Creator `json:"creator,omitempty"`

	// Entries contains all request/response records, in recording order.
	Entries []Entry `json:"entries"`
}

// Creator identifies the tool that produced the capture.
type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Entry describes one request/response pair. Only the fields the
// comparison pipeline consumes are modeled; everything else in the
// entry is ignored on decode.
type Entry struct {
	// Start of the request (ISO 8601).
	Start string `json:"startedDateTime,omitempty"`

	// Time is the recorded total in milliseconds, if present.
	Time float64 `json:"time,omitempty"`

	// Request details.
	Request Request `json:"request"`

	// Response details.
	Response Response `json:"response"`

	// Timings is kept as raw JSON. Real captures contain absent, null,
	// negative and occasionally non-numeric phase values, and some
	// exporters emit timings that are not an object at all. Coercion
	// into a canonical breakdown happens in the delta package, never
	// during decode.
	Timings json.RawMessage `json:"timings,omitempty"`
}

// Request contains the request fields the comparator consumes.
type Request struct {
	// Method of the HTTP request, in caps, GET/POST/etc.
	Method string `json:"method,omitempty"`

	// URL of the request (absolute), used as the match key.
	URL string `json:"url,omitempty"`
}

// Response contains the response fields the comparator consumes.
type Response struct {
	// StatusCode indicates the response status.
	StatusCode int `json:"status,omitempty"`

	// StatusText describes the response status.
	StatusText string `json:"statusText,omitempty"`
}
