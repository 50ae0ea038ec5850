package linkcrawler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"sort"

	"github.com/yingtu35/link-crawler/pkg/domain"
	"golang.org/x/sync/errgroup"
)

const drainLimit = 64 * 1024

// Outcome is the verification result of a single URL.
type Outcome struct {
	URL        string
	StatusCode int    // 0 when the request failed before a response arrived
	Reason     string // Reason phrase, or the transport error
	Skipped    bool   // Exempt from verification, never fetched
	External   bool   // Outside the base URL's domain
}

// Passed reports whether the URL was exempt or answered 200 OK.
func (o Outcome) Passed() bool {
	return o.Skipped || o.StatusCode == http.StatusOK
}

// Message returns the failure message, or an empty string for passing outcomes.
func (o Outcome) Message() string {
	if o.Passed() {
		return ""
	}
	return statusMessage(o.URL, o.StatusCode, o.Reason)
}

// VerifyStatusCodes deduplicates urls, drops exempt ones and checks the rest concurrently.
// Every check runs to completion; a failing URL only adds its message to the report.
func (c *LinkCrawler) VerifyStatusCodes(ctx context.Context, urls []string) *Report {
	unique := dedupe(urls)
	outcomes := make([]Outcome, len(unique))

	var g errgroup.Group
	if c.options.MaxConcurrency > 0 {
		g.SetLimit(c.options.MaxConcurrency)
	}
	for i, u := range unique {
		if !c.ShouldVerify(u) {
			outcomes[i] = Outcome{URL: u, Skipped: true}
			continue
		}
		g.Go(func() error {
			outcomes[i] = c.VerifyStatusCode(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	report := newReport(outcomes)
	log.Printf("verified %d links: %d checked, %d skipped, %d failed",
		len(outcomes), report.Checked(), report.Skipped(), len(report.Failures))
	return report
}

// VerifyStatusCode checks a single URL. Concurrent calls for the same URL share one request,
// which runs detached from any caller's cancellation and is bounded by the client timeout.
// Each caller still stops waiting when its own ctx ends.
func (c *LinkCrawler) VerifyStatusCode(ctx context.Context, url string) Outcome {
	if !c.ShouldVerify(url) {
		return Outcome{URL: url, Skipped: true}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.abortedOutcome(ctx, url, err)
		}
	}

	shared := context.WithoutCancel(ctx)
	ch := c.flightGroup.DoChan(url, func() (interface{}, error) {
		return c.check(shared, url), nil
	})
	select {
	case res := <-ch:
		return res.Val.(Outcome)
	case <-ctx.Done():
		return c.abortedOutcome(ctx, url, ctx.Err())
	}
}

// abortedOutcome records a check the caller gave up on. Running out of time counts as 408.
func (c *LinkCrawler) abortedOutcome(ctx context.Context, url string, err error) Outcome {
	outcome := Outcome{URL: url, External: c.isExternal(url)}
	_, hasDeadline := ctx.Deadline()
	if isTimeout(err) || hasDeadline && !errors.Is(ctx.Err(), context.Canceled) {
		log.Printf("check of %s ran out of time: %v", url, err)
		outcome.StatusCode = http.StatusRequestTimeout
		outcome.Reason = http.StatusText(http.StatusRequestTimeout)
		return outcome
	}
	outcome.Reason = errorReason(err)
	return outcome
}

func (c *LinkCrawler) check(ctx context.Context, url string) Outcome {
	outcome := Outcome{URL: url, External: c.isExternal(url)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome.Reason = errorReason(err)
		return outcome
	}
	req.Header.Set("User-Agent", c.options.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Printf("request to %s timed out", url)
			outcome.StatusCode = http.StatusRequestTimeout
			outcome.Reason = http.StatusText(http.StatusRequestTimeout)
			return outcome
		}
		log.Printf("Error checking %s: %v", url, err)
		outcome.Reason = errorReason(err)
		return outcome
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))

	outcome.StatusCode = resp.StatusCode
	outcome.Reason = reasonPhrase(resp)
	return outcome
}

func (c *LinkCrawler) isExternal(url string) bool {
	return !domain.IsSameDomain(c.domain, url)
}

func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		unique = append(unique, u)
	}
	sort.Strings(unique)
	return unique
}
