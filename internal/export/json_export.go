package export

import (
	"encoding/json"
	"log"
	"os"

	"github.com/yingtu35/link-crawler/internal/linkcrawler"
)

type Record struct {
	URL      string `json:"url"`
	Status   int    `json:"status"`
	Reason   string `json:"reason,omitempty"`
	Result   string `json:"result"`
	External bool   `json:"external"`
}

type Document struct {
	AllOK    bool     `json:"all_ok"`
	Failures []string `json:"failures"`
	Links    []Record `json:"links"`
}

type JsonExporter struct{}

func NewJsonExporter() Exporter {
	return &JsonExporter{}
}

func (e *JsonExporter) Export(report *linkcrawler.Report, filename string) (string, error) {
	path := filename + ".json"

	resultJson, err := json.MarshalIndent(e.transformData(report), "", "    ")
	if err != nil {
		log.Printf("Error marshalling data: %v", err)
		return "", err
	}

	if err := os.WriteFile(path, resultJson, 0o644); err != nil {
		log.Printf("Error exporting data to JSON: %v", err)
		return "", err
	}
	return path, nil
}

func (e *JsonExporter) transformData(report *linkcrawler.Report) Document {
	doc := Document{
		AllOK:    report.AllOK,
		Failures: report.Failures,
		Links:    make([]Record, 0, len(report.Outcomes)),
	}
	for _, o := range report.Outcomes {
		doc.Links = append(doc.Links, Record{
			URL:      o.URL,
			Status:   o.StatusCode,
			Reason:   o.Reason,
			Result:   result(o),
			External: o.External,
		})
	}
	return doc
}
