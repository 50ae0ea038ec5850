package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/yingtu35/link-crawler/internal/linkcrawler"
	"github.com/yingtu35/link-crawler/pkg/domain"
)

// ErrNoFavicon is returned when the home page declares no shortcut icon.
var ErrNoFavicon = errors.New("shortcut icon not found")

// Page holds what every page object needs: where the site lives and how to open it.
type Page struct {
	BaseURL   string
	Navigator linkcrawler.Fetcher
}

// Home is the page object for the site's landing page.
type Home struct {
	Page
	client *http.Client
}

func NewHome(baseURL string, navigator linkcrawler.Fetcher, client *http.Client) *Home {
	if client == nil {
		client = http.DefaultClient
	}
	return &Home{
		Page:   Page{BaseURL: domain.TrimBase(baseURL), Navigator: navigator},
		client: client,
	}
}

// GoToHomepage opens the base URL and fails unless it answers 200 OK.
func (h *Home) GoToHomepage(ctx context.Context) error {
	res, err := h.Navigator.Fetch(ctx, h.BaseURL)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.BaseURL, err)
	}
	if res.StatusCode != http.StatusOK {
		return &linkcrawler.FetchError{URL: h.BaseURL, StatusCode: res.StatusCode, Reason: res.Reason}
	}
	return nil
}

// FaviconURL returns the href of the home page's shortcut icon link.
func (h *Home) FaviconURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", h.BaseURL, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", h.BaseURL, err)
	}
	href, ok := doc.Find(`[rel="shortcut icon"]`).First().Attr("href")
	if !ok {
		return "", ErrNoFavicon
	}
	return href, nil
}
