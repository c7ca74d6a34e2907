package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w: w,
		headers: []string{
			"Week", "Ends", "Workouts", "Calories", "Miles", "kJ",
		},
	}
}

func (f *TableFormatter) Format(report *Report) error {
	rows := make([][]string, 0, len(report.Weeks)+1)
	for _, week := range report.Weeks {
		rows = append(rows, []string{
			week.WeekStart.Format(model.DateLayout),
			week.WeekEnd().Format(model.DateLayout),
			util.FormatCount(week.WorkoutCount),
			util.FormatInteger(week.Calories),
			util.FormatThousands(week.Distance, 2),
			util.FormatInteger(week.Output),
		})
	}

	s := report.Summary
	total := []string{
		"Total",
		"",
		util.FormatCount(s.Workouts),
		util.FormatInteger(s.TotalCalories),
		util.FormatThousands(s.TotalDistance, 2),
		util.FormatInteger(s.TotalOutput),
	}

	widths := f.calculateColumnWidths(append(rows, total))

	var b strings.Builder
	f.printBorder(&b, widths, "top")
	f.printRow(&b, f.headers, widths)
	f.printBorder(&b, widths, "middle")
	for _, row := range rows {
		f.printRow(&b, row, widths)
	}
	f.printBorder(&b, widths, "middle")
	f.printRow(&b, total, widths)
	f.printBorder(&b, widths, "bottom")

	_, err := io.WriteString(f.w, b.String())
	return err
}

// calculateColumnWidths sizes each column to its widest cell
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

// printRow prints one row; the two date columns are left-aligned, numbers
// right-aligned.
func (f *TableFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		fmt.Fprintf(b, " %s │", padCell(value, widths[i], i < 2))
	}
	b.WriteString("\n")
}

func padCell(s string, width int, leftAlign bool) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if leftAlign {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}
