package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

// JSONWeek is the exported shape of one week.
type JSONWeek struct {
	WeekStart    string  `json:"weekStart"`
	WeekEnd      string  `json:"weekEnd"`
	WorkoutCount int     `json:"workoutCount"`
	Calories     float64 `json:"calories"`
	Distance     float64 `json:"distanceMiles"`
	Output       float64 `json:"outputKJ"`
}

type JSONPeaks struct {
	Calories JSONWeek `json:"highestCalories"`
	Distance JSONWeek `json:"highestMileage"`
	Workouts JSONWeek `json:"mostActive"`
}

// JSONReport is the exported shape of a Report.
type JSONReport struct {
	Discipline string        `json:"discipline"`
	Weeks      []JSONWeek    `json:"weeks"`
	Summary    model.Summary `json:"summary"`
	Peaks      *JSONPeaks    `json:"peaks,omitempty"`
}

func toJSONWeek(w model.WeeklyAggregate) JSONWeek {
	return JSONWeek{
		WeekStart:    w.WeekStart.Format(model.DateLayout),
		WeekEnd:      w.WeekEnd().Format(model.DateLayout),
		WorkoutCount: w.WorkoutCount,
		Calories:     w.Calories,
		Distance:     w.Distance,
		Output:       w.Output,
	}
}

func (f *JSONFormatter) Format(report *Report) error {
	out := JSONReport{
		Discipline: report.Discipline,
		Weeks:      make([]JSONWeek, 0, len(report.Weeks)),
		Summary:    report.Summary,
	}
	for _, w := range report.Weeks {
		out.Weeks = append(out.Weeks, toJSONWeek(w))
	}
	if len(report.Weeks) > 0 {
		out.Peaks = &JSONPeaks{
			Calories: toJSONWeek(report.Peaks.Calories),
			Distance: toJSONWeek(report.Peaks.Distance),
			Workouts: toJSONWeek(report.Peaks.Workouts),
		}
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
