package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// SummaryFormatter prints only the summary and peak blocks, headed by the
// covered date range.
type SummaryFormatter struct {
	w io.Writer
}

func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

func (f *SummaryFormatter) Format(report *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Weekly Summary Report\n", report.Discipline)
	if n := len(report.Weeks); n > 0 {
		fmt.Fprintf(&b, "Date Range: %s to %s\n",
			report.Weeks[0].WeekStart.Format(model.DateLayout),
			report.Weeks[n-1].WeekEnd().Format(model.DateLayout))
		fmt.Fprintf(&b, "Workouts: %d\n", report.Summary.Workouts)
	}
	writeSummary(&b, report)
	writePeaks(&b, report)

	_, err := io.WriteString(f.w, b.String())
	return err
}
