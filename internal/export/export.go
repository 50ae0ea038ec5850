package export

import (
	"fmt"
	"strings"

	"github.com/yingtu35/link-crawler/internal/linkcrawler"
)

type Exporter interface {
	// Export writes the report to the specified file, the extension is added by the exporter
	Export(report *linkcrawler.Report, filename string) (string, error)
}

// NewExporter returns the exporter for format ("csv" or "json").
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return NewCSVExporter(), nil
	case "json":
		return NewJsonExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func result(o linkcrawler.Outcome) string {
	switch {
	case o.Skipped:
		return "skipped"
	case o.Passed():
		return "ok"
	default:
		return "failed"
	}
}
