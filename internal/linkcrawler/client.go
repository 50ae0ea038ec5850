package linkcrawler

import (
	"crypto/tls"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"syscall"
	"time"
)

// NewHTTPClient builds the client used for page fetches and status checks.
// Redirects are followed with the net/http default policy.
func NewHTTPClient(opts Options) *http.Client {
	opts.applyDefaults()

	idlePerHost := opts.MaxConcurrency
	if idlePerHost <= 0 {
		idlePerHost = MaxConcurrency
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   idlePerHost,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: newRetryTransport(transport, opts.Retries, opts.RetryBackoff),
	}
}

// retryTransport re-sends body-less requests that failed with a transient connection error.
type retryTransport struct {
	base    http.RoundTripper
	retries int
	backoff time.Duration
}

func newRetryTransport(base http.RoundTripper, retries int, backoff time.Duration) *retryTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &retryTransport{base: base, retries: retries, backoff: backoff}
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	backoff := t.backoff
	for attempt := 0; ; attempt++ {
		resp, err := t.base.RoundTrip(req)
		if err == nil || attempt >= t.retries || req.Context().Err() != nil || !replayable(req) || !isTransient(err) {
			return resp, err
		}
		log.Printf("retrying %s after error: %v (%d/%d)", req.URL, err, attempt+1, t.retries)

		if backoff > 0 {
			timer := time.NewTimer(backoff)
			select {
			case <-req.Context().Done():
				timer.Stop()
				return nil, req.Context().Err()
			case <-timer.C:
			}
			backoff *= 2
		}
	}
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody
}

// isTransient reports connection-level failures worth another attempt.
// Timeouts and cancellations are final.
func isTransient(err error) bool {
	if isTimeout(err) {
		return false
	}
	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
