package linkcrawler

import "time"

const (
	MaxConcurrency = 20 // maximum number of concurrent status checks
	DefaultTimeout = 10 // per-request timeout in seconds
	DefaultRetries = 5  // connection retries on transient failures

	DefaultRetryBackoff = 100 * time.Millisecond
	DefaultMaxBodyBytes = 5 * 1024 * 1024
	DefaultUserAgent    = "link-crawler/1.0"
)
