package linkcrawler

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportPrintResults(t *testing.T) {
	t.Parallel()

	report := newReport([]Outcome{
		{URL: "http://example.com/a", StatusCode: 200, Reason: "OK"},
		{URL: "http://example.com/b", StatusCode: 404, Reason: "Not Found"},
		{URL: "http://example.com/", Skipped: true},
	})
	if report.AllOK {
		t.Fatal("expected report to fail")
	}

	var buf bytes.Buffer
	report.PrintResults(&buf)
	out := buf.String()
	if !strings.Contains(out, "http://example.com/b") || !strings.Contains(out, "Not Found") {
		t.Fatalf("expected failing link in table: %q", out)
	}
	if strings.Contains(out, "http://example.com/a") {
		t.Fatalf("passing link should not be listed: %q", out)
	}
	if !strings.Contains(out, "2 checked, 1 skipped, 1 failed") {
		t.Fatalf("missing summary line: %q", out)
	}
}

func TestReportPrintResultsNoFailures(t *testing.T) {
	t.Parallel()

	report := newReport([]Outcome{{URL: "http://example.com/a", StatusCode: 200, Reason: "OK"}})

	var buf bytes.Buffer
	report.PrintResults(&buf)
	if !strings.Contains(buf.String(), "No dead links found") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
