package constants

import "time"

// API defaults.
const (
	// DefaultServer is the default content delivery API host.
	DefaultServer = "cdn.contentapi.io"

	// DefaultUserAgent identifies the client library on the wire.
	DefaultUserAgent = "cda-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. The request pipeline never retries; these only tune the
// transport when a caller explicitly opts in via Config.RetryMax.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)
