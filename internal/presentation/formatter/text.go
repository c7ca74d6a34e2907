package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

const bannerWidth = 80

// TextFormatter prints the plain weekly report: one line per week followed by
// the summary and peak blocks.
type TextFormatter struct {
	w io.Writer
}

func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

func (f *TextFormatter) Format(report *Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "WEEKLY %s TOTALS (Monday to Sunday)\n", strings.ToUpper(report.Discipline))
	b.WriteString(banner())

	for _, week := range report.Weeks {
		fmt.Fprintf(&b, "Week %s to %s: Calories: %s, Miles: %.2f, kJ: %s\n",
			week.WeekStart.Format(model.DateLayout),
			week.WeekEnd().Format(model.DateLayout),
			util.FormatInteger(week.Calories),
			week.Distance,
			util.FormatInteger(week.Output))
	}

	b.WriteString("\n")
	writeSummary(&b, report)
	writePeaks(&b, report)

	_, err := io.WriteString(f.w, b.String())
	return err
}

func banner() string {
	return strings.Repeat("=", bannerWidth) + "\n"
}

func writeSummary(b *strings.Builder, report *Report) {
	s := report.Summary

	b.WriteString(banner())
	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(banner())
	fmt.Fprintf(b, "Total weeks analyzed: %d\n", s.Weeks)
	fmt.Fprintf(b, "Total Calories (all weeks): %s\n", util.FormatInteger(s.TotalCalories))
	fmt.Fprintf(b, "Average weekly calories: %s\n", util.FormatInteger(s.AverageCalories))
	fmt.Fprintf(b, "Total Miles (all weeks): %.2f\n", s.TotalDistance)
	fmt.Fprintf(b, "Average weekly miles: %.2f\n", s.AverageDistance)
	fmt.Fprintf(b, "Total kJ Output (all weeks): %s\n", util.FormatInteger(s.TotalOutput))
	fmt.Fprintf(b, "Average weekly kJ: %s\n", util.FormatInteger(s.AverageOutput))
}

func writePeaks(b *strings.Builder, report *Report) {
	if len(report.Weeks) == 0 {
		return
	}
	p := report.Peaks

	b.WriteString("\nPEAK PERFORMANCE:\n")
	fmt.Fprintf(b, "Highest calorie week: %s (%s calories)\n",
		p.Calories.WeekStart.Format(model.DateLayout), util.FormatInteger(p.Calories.Calories))
	fmt.Fprintf(b, "Highest mileage week: %s (%.1f miles)\n",
		p.Distance.WeekStart.Format(model.DateLayout), p.Distance.Distance)
	fmt.Fprintf(b, "Most active week: %s (%d workouts)\n",
		p.Workouts.WeekStart.Format(model.DateLayout), p.Workouts.WorkoutCount)
}
