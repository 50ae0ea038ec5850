package pages

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/yingtu35/link-crawler/internal/linkcrawler"
)

// Browser drives a headless Chromium through Playwright.
// It implements linkcrawler.Fetcher so that rendered pages can be link-checked.
type Browser struct {
	pwClient *playwright.Playwright // The Playwright client to use
	browser  playwright.Browser     // The Playwright browser to use
	timeout  time.Duration          // Navigation timeout
}

// NewBrowser starts Playwright and launches a headless Chromium.
// Browsers must already be installed.
func NewBrowser(timeout time.Duration) (*Browser, error) {
	if timeout <= 0 {
		timeout = linkcrawler.DefaultTimeout * time.Second
	}

	pw, err := playwright.Run(&playwright.RunOptions{SkipInstallBrowsers: true})
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Browser{pwClient: pw, browser: browser, timeout: timeout}, nil
}

// Fetch navigates to url in a fresh browser context and returns the rendered DOM.
// Certificate errors are ignored, matching the HTTP client policy.
func (b *Browser) Fetch(ctx context.Context, url string) (*linkcrawler.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bctx, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	defer bctx.Close()
	bctx.SetDefaultNavigationTimeout(float64(b.timeout.Milliseconds()))

	page, err := bctx.NewPage()
	if err != nil {
		return nil, err
	}

	log.Printf("fetching dynamic page %s", url)
	resp, err := page.Goto(url)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("navigation returned no response")
	}

	res := &linkcrawler.Response{
		URL:        resp.URL(),
		StatusCode: resp.Status(),
		Reason:     resp.StatusText(),
	}
	if res.StatusCode != 200 {
		return res, nil
	}

	content, err := page.Content()
	if err != nil {
		return nil, err
	}
	res.Body = []byte(content)
	return res, nil
}

// Close shuts down the browser and the Playwright driver.
func (b *Browser) Close() error {
	if b == nil || b.pwClient == nil {
		return nil
	}
	var errs []error
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if err := b.pwClient.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}
