package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yingtu35/link-crawler/internal/config"
	"github.com/yingtu35/link-crawler/internal/export"
	"github.com/yingtu35/link-crawler/internal/linkcrawler"
	"github.com/yingtu35/link-crawler/internal/pages"
)

var errLinksFailed = errors.New("link verification failed")

func main() {
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a YAML configuration file")
	baseURL := flag.String("url", "", "Base URL of the site under test")
	path := flag.String("path", "/", "Page to check, relative to the base URL unless -relative=false")
	relative := flag.Bool("relative", true, "Append -path to the base URL")
	scope := flag.String("scope", "", "Restrict link collection to an element, e.g. div#main.content")
	concurrency := flag.Int("concurrency", linkcrawler.MaxConcurrency, "Maximum concurrent checks, 0 for unbounded")
	rps := flag.Float64("rps", 0, "Maximum requests per second, 0 to disable")
	timeout := flag.Duration("timeout", linkcrawler.DefaultTimeout*time.Second, "Per-request timeout")
	retries := flag.Int("retries", linkcrawler.DefaultRetries, "Retries on transient connection errors")
	insecure := flag.Bool("insecure", true, "Skip TLS certificate verification")
	render := flag.Bool("render", false, "Render the page in headless Chromium before collecting links")
	home := flag.Bool("home", false, "Open the home page first and print its shortcut icon URL")
	exportFormat := flag.String("export", "", "Export the report as csv or json")
	output := flag.String("output", "links", "Export file name without extension")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.BaseURL = *baseURL
		case "path":
			cfg.Path = *path
		case "relative":
			cfg.Relative = *relative
		case "scope":
			cfg.Scope = *scope
		case "concurrency":
			cfg.MaxConcurrency = *concurrency
		case "rps":
			cfg.RequestsPerSecond = *rps
		case "timeout":
			cfg.Timeout = config.DurationFrom(*timeout)
		case "retries":
			cfg.Retries = *retries
		case "insecure":
			cfg.InsecureSkipVerify = *insecure
		case "render":
			cfg.Render = *render
		case "export":
			cfg.Export.Format = *exportFormat
		case "output":
			cfg.Export.Filename = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		flag.Usage()
		return err
	}
	selector, err := linkcrawler.ParseSelector(cfg.Scope)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := cfg.CrawlerOptions()
	if cfg.Render {
		browser, err := pages.NewBrowser(opts.Timeout)
		if err != nil {
			return err
		}
		defer func() {
			if err := browser.Close(); err != nil {
				log.Printf("Error closing browser: %v", err)
			}
		}()
		opts.Fetcher = browser
	}

	crawler, err := linkcrawler.New(opts)
	if err != nil {
		return err
	}

	if *home {
		homePage := pages.NewHome(crawler.BaseURL(), crawler.Fetcher(), crawler.Client())
		if err := homePage.GoToHomepage(ctx); err != nil {
			return err
		}
		href, err := homePage.FaviconURL(ctx)
		if err != nil {
			return err
		}
		log.Printf("favicon: %s", href)
	}

	start := time.Now()
	links, err := crawler.CollectLinks(ctx, cfg.Path, cfg.Relative, selector)
	if err != nil {
		return err
	}
	report := crawler.VerifyStatusCodes(ctx, links)
	elapsed := time.Since(start)

	report.PrintResults(os.Stdout)
	log.Printf("Total Hunting Time: %s", elapsed)

	if cfg.Export.Format != "" {
		exporter, err := export.NewExporter(cfg.Export.Format)
		if err != nil {
			return err
		}
		written, err := exporter.Export(report, cfg.Export.Filename)
		if err != nil {
			return err
		}
		log.Printf("report written to %s", written)
	}

	if !report.AllOK {
		return errLinksFailed
	}
	return nil
}
