package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yingtu35/link-crawler/internal/linkcrawler"
)

func sampleReport() *linkcrawler.Report {
	return &linkcrawler.Report{
		AllOK:    false,
		Failures: []string{"http://example.com/b returned: 404 Not Found"},
		Outcomes: []linkcrawler.Outcome{
			{URL: "http://example.com/", Skipped: true},
			{URL: "http://example.com/a", StatusCode: 200, Reason: "OK"},
			{URL: "http://example.com/b", StatusCode: 404, Reason: "Not Found"},
			{URL: "https://other.test/", StatusCode: 200, Reason: "OK", External: true},
		},
	}
}

func TestCSVExport(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "links")
	path, err := NewCSVExporter().Export(sampleReport(), base)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if path != base+".csv" {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d: %q", len(lines), data)
	}
	if lines[0] != "URL,Status,Reason,Result,External" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[3] != "http://example.com/b,404,Not Found,failed,false" {
		t.Fatalf("unexpected failing row %q", lines[3])
	}
	if !strings.HasSuffix(lines[1], ",skipped,false") {
		t.Fatalf("unexpected skipped row %q", lines[1])
	}
}

func TestJSONExport(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "links")
	path, err := NewJsonExporter().Export(sampleReport(), base)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.AllOK || len(doc.Failures) != 1 || len(doc.Links) != 4 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if !doc.Links[3].External || doc.Links[3].Result != "ok" {
		t.Fatalf("unexpected external record %+v", doc.Links[3])
	}
}

func TestNewExporter(t *testing.T) {
	t.Parallel()

	if _, err := NewExporter("CSV"); err != nil {
		t.Fatalf("csv exporter: %v", err)
	}
	if _, err := NewExporter("json"); err != nil {
		t.Fatalf("json exporter: %v", err)
	}
	if _, err := NewExporter("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
