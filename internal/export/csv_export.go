package export

import (
	"log"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/yingtu35/link-crawler/internal/linkcrawler"
)

type LinkRow struct {
	URL      string `csv:"URL"`
	Status   int    `csv:"Status"`
	Reason   string `csv:"Reason,omitempty"`
	Result   string `csv:"Result"`
	External bool   `csv:"External"`
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(report *linkcrawler.Report, filename string) (string, error) {
	path := filename + ".csv"
	file, err := os.Create(path)
	if err != nil {
		log.Printf("Error creating file %s: %v", path, err)
		return "", err
	}
	defer file.Close()

	rows := e.transformData(report)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.Printf("Error exporting data to CSV: %v", err)
		return "", err
	}
	return path, nil
}

func (e *CSVExporter) transformData(report *linkcrawler.Report) []LinkRow {
	rows := make([]LinkRow, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		rows = append(rows, LinkRow{
			URL:      o.URL,
			Status:   o.StatusCode,
			Reason:   o.Reason,
			Result:   result(o),
			External: o.External,
		})
	}
	return rows
}
