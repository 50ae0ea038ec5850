package linkcrawler

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CollectLinks fetches a page and returns the hrefs of every anchor inside scope, in
// document order. When relative is true, path is appended to the base URL. Hrefs that
// do not start with "http" are prefixed with the base URL. A page that does not
// answer 200 OK yields a *FetchError.
func (c *LinkCrawler) CollectLinks(ctx context.Context, path string, relative bool, scope Selector) ([]string, error) {
	target := path
	if relative {
		target = c.baseURL + path
	}

	log.Printf("fetching page %s", target)
	res, err := c.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: target, StatusCode: res.StatusCode, Reason: res.Reason}
	}

	hrefs, err := extractAnchors(res.Body, scope)
	if err != nil {
		return nil, fmt.Errorf("collect links from %s: %w", target, err)
	}

	links := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		links = append(links, c.absolute(href))
	}
	log.Printf("collected %d links from %s within %s", len(links), target, scope)
	return links, nil
}

func (c *LinkCrawler) absolute(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return c.baseURL + href
}

func extractAnchors(body []byte, scope Selector) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	doc := goquery.NewDocumentFromNode(root)

	selection := doc.Selection
	if !scope.IsZero() {
		selection = doc.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return scope.Matches(s.Get(0))
		}).First()
		if selection.Length() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrScopeNotFound, scope)
		}
	}

	var hrefs []string
	selection.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}
