package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/constants"
)

// WorkoutRecord is one row of a workout export. Only the columns the report
// needs are kept; the rest of the row is never read.
type WorkoutRecord struct {
	Row        int    `json:"row"` // 1-based data row, header excluded
	Discipline string `json:"discipline"`
	Timestamp  string `json:"timestamp"`
	Calories   string `json:"calories"`
	Distance   string `json:"distance"`
	Output     string `json:"output"`
}

// Metrics holds the numeric columns of a WorkoutRecord.
type Metrics struct {
	Calories float64 `json:"calories"`
	Distance float64 `json:"distance"` // miles
	Output   float64 `json:"output"`   // kJ
}

// Metrics converts the raw metric cells. Empty cells count as zero, anything
// else that is not a finite number is a ValueParseError.
func (r WorkoutRecord) Metrics() (Metrics, error) {
	var m Metrics
	var err error

	if m.Calories, err = parseMetric(r.Row, ColumnCalories, r.Calories); err != nil {
		return Metrics{}, err
	}
	if m.Distance, err = parseMetric(r.Row, ColumnDistance, r.Distance); err != nil {
		return Metrics{}, err
	}
	if m.Output, err = parseMetric(r.Row, ColumnOutput, r.Output); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

func parseMetric(row int, column, raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ValueParseError{Row: row, Column: column, Value: raw, Err: err}
	}
	// ParseFloat accepts "NaN" and "Inf"; neither can be summed into a week.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValueParseError{Row: row, Column: column, Value: raw, Err: ErrNotFinite}
	}
	return f, nil
}

// WeeklyAggregate holds the totals of all workouts in one Monday-Sunday week.
type WeeklyAggregate struct {
	WeekStart    time.Time `json:"weekStart"` // Monday, midnight UTC
	Calories     float64   `json:"calories"`
	Distance     float64   `json:"distance"`
	Output       float64   `json:"output"`
	WorkoutCount int       `json:"workoutCount"`
}

// WeekEnd returns the Sunday closing the week.
func (w WeeklyAggregate) WeekEnd() time.Time {
	return w.WeekStart.AddDate(0, 0, constants.WeekEndOffset)
}

// Add folds one workout into the week.
func (w *WeeklyAggregate) Add(m Metrics) {
	w.Calories += m.Calories
	w.Distance += m.Distance
	w.Output += m.Output
	w.WorkoutCount++
}

func (w WeeklyAggregate) String() string {
	return fmt.Sprintf("%s..%s (%d workouts)",
		w.WeekStart.Format(DateLayout), w.WeekEnd().Format(DateLayout), w.WorkoutCount)
}

// Summary holds the all-weeks totals and per-week averages.
type Summary struct {
	Weeks           int     `json:"weeks"`
	Workouts        int     `json:"workouts"`
	TotalCalories   float64 `json:"totalCalories"`
	AverageCalories float64 `json:"averageCalories"`
	TotalDistance   float64 `json:"totalDistance"`
	AverageDistance float64 `json:"averageDistance"`
	TotalOutput     float64 `json:"totalOutput"`
	AverageOutput   float64 `json:"averageOutput"`
}

// Peaks points at the best week for each metric. Ties resolve to the earliest
// week.
type Peaks struct {
	Calories WeeklyAggregate `json:"calories"`
	Distance WeeklyAggregate `json:"distance"`
	Workouts WeeklyAggregate `json:"workouts"`
}

// FileEvent is a change notification for the watched export.
type FileEvent struct {
	Path      string
	Operation string
}
