package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report *Report) error {
	w := csv.NewWriter(f.w)

	headers := []string{
		"Week Start", "Week End", "Workouts",
		"Calories Burned", "Distance (mi)", "Total Output",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, week := range report.Weeks {
		record := []string{
			week.WeekStart.Format(model.DateLayout),
			week.WeekEnd().Format(model.DateLayout),
			strconv.Itoa(week.WorkoutCount),
			strconv.FormatFloat(week.Calories, 'f', -1, 64),
			strconv.FormatFloat(week.Distance, 'f', 2, 64),
			strconv.FormatFloat(week.Output, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
