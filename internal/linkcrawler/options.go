package linkcrawler

import (
	"net/http"
	"time"
)

// Options configures a LinkCrawler.
type Options struct {
	BaseURL            string        // Root URL of the system under test
	MaxConcurrency     int           // Upper bound on in-flight checks, <= 0 means one goroutine per URL
	RequestsPerSecond  float64       // Optional request pacing, <= 0 disables it
	Timeout            time.Duration // Per-request timeout
	Retries            int           // Connection retries on transient failures
	RetryBackoff       time.Duration // Delay before the first retry, doubled afterwards
	InsecureSkipVerify bool          // Accept self-signed and staging certificates
	MaxBodyBytes       int64         // Cap on the page body read by CollectLinks
	UserAgent          string        // User-Agent header sent with every request

	Client  *http.Client // Optional client override, built from the options when nil
	Fetcher Fetcher      // Optional page fetcher for CollectLinks, HTTP when nil
}

// DefaultOptions returns the options used when nothing else is configured.
func DefaultOptions(baseURL string) Options {
	return Options{
		BaseURL:            baseURL,
		MaxConcurrency:     MaxConcurrency,
		Timeout:            DefaultTimeout * time.Second,
		Retries:            DefaultRetries,
		RetryBackoff:       DefaultRetryBackoff,
		InsecureSkipVerify: true,
		MaxBodyBytes:       DefaultMaxBodyBytes,
		UserAgent:          DefaultUserAgent,
	}
}

func (o *Options) applyDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout * time.Second
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.RetryBackoff < 0 {
		o.RetryBackoff = 0
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
}
