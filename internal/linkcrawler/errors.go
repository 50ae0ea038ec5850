package linkcrawler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrScopeNotFound is returned when a non-empty selector matches no element.
var ErrScopeNotFound = errors.New("scope element not found")

// FetchError reports a page that could not be collected because it did not return 200 OK.
type FetchError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	return statusMessage(e.URL, e.StatusCode, e.Reason)
}

func statusMessage(target string, code int, reason string) string {
	return fmt.Sprintf("%s returned: %d %s", target, code, reason)
}

// reasonPhrase returns the reason phrase sent by the server, falling back to the standard text.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// errorReason strips the "Get <url>:" wrapper added by net/http.
func errorReason(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
