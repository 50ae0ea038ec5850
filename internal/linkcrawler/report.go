package linkcrawler

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
)

// Report aggregates the outcomes of one VerifyStatusCodes call.
type Report struct {
	AllOK    bool      // True when no URL failed
	Failures []string  // One message per failing URL
	Outcomes []Outcome // Every distinct URL, sorted
}

func newReport(outcomes []Outcome) *Report {
	r := &Report{Outcomes: outcomes, Failures: []string{}}
	for _, o := range outcomes {
		if !o.Passed() {
			r.Failures = append(r.Failures, o.Message())
		}
	}
	r.AllOK = len(r.Failures) == 0
	return r
}

// Checked returns the number of URLs that were fetched.
func (r *Report) Checked() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of exempt URLs.
func (r *Report) Skipped() int {
	return len(r.Outcomes) - r.Checked()
}

func (r *Report) PrintResults(w io.Writer) {
	fmt.Fprintln(w)
	if r.AllOK {
		fmt.Fprintln(w, "No dead links found")
	} else {
		tbl := table.New("URL", "Status", "Reason", "External").WithWriter(w)
		for _, o := range r.Outcomes {
			if !o.Passed() {
				tbl.AddRow(o.URL, o.StatusCode, o.Reason, o.External)
			}
		}
		tbl.Print()
	}
	fmt.Fprintf(w, "%d checked, %d skipped, %d failed\n", r.Checked(), r.Skipped(), len(r.Failures))
}
