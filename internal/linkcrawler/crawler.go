package linkcrawler

import (
	"net/http"

	"github.com/yingtu35/link-crawler/pkg/domain"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// LinkCrawler collects the links of a page and verifies their status codes.
type LinkCrawler struct {
	options Options       // The options the crawler was built with
	baseURL string        // The base URL without trailing slash
	domain  string        // The domain of the base URL
	client  *http.Client  // The HTTP client used for status checks
	fetcher Fetcher       // The fetcher used to load pages for link collection
	limiter *rate.Limiter // Optional request pacing, nil when disabled

	flightGroup singleflight.Group // A singleflight group to avoid duplicate requests
}

// New builds a LinkCrawler from opts.
func New(opts Options) (*LinkCrawler, error) {
	opts.applyDefaults()
	baseURL := domain.TrimBase(opts.BaseURL)
	if err := domain.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	host, err := domain.GetDomain(baseURL)
	if err != nil {
		return nil, err
	}
	opts.BaseURL = baseURL

	client := opts.Client
	if client == nil {
		client = NewHTTPClient(opts)
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(client, opts.UserAgent, opts.MaxBodyBytes)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &LinkCrawler{
		options: opts,
		baseURL: baseURL,
		domain:  host,
		client:  client,
		fetcher: fetcher,
		limiter: limiter,
	}, nil
}

// BaseURL returns the normalised base URL.
func (c *LinkCrawler) BaseURL() string {
	return c.baseURL
}

// Client returns the HTTP client shared by page fetches and status checks.
func (c *LinkCrawler) Client() *http.Client {
	return c.client
}

// Fetcher returns the fetcher CollectLinks loads pages with.
func (c *LinkCrawler) Fetcher() Fetcher {
	return c.fetcher
}
