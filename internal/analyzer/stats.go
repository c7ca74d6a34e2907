package analyzer

import (
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// Summarize totals the weeks and averages them per week. Averages of an empty
// slice are zero.
func Summarize(weeks []model.WeeklyAggregate) model.Summary {
	s := model.Summary{Weeks: len(weeks)}
	for _, w := range weeks {
		s.Workouts += w.WorkoutCount
		s.TotalCalories += w.Calories
		s.TotalDistance += w.Distance
		s.TotalOutput += w.Output
	}
	if s.Weeks > 0 {
		n := float64(s.Weeks)
		s.AverageCalories = s.TotalCalories / n
		s.AverageDistance = s.TotalDistance / n
		s.AverageOutput = s.TotalOutput / n
	}
	return s
}

// MaxBy returns the index of the week with the largest value. Only a strictly
// larger value replaces the current best, so ties keep the earliest week of an
// ascending slice. It returns -1 for an empty slice.
func MaxBy(weeks []model.WeeklyAggregate, value func(model.WeeklyAggregate) float64) int {
	best := -1
	for i, w := range weeks {
		if best < 0 || value(w) > value(weeks[best]) {
			best = i
		}
	}
	return best
}

// FindPeaks picks the highest-calorie, longest-distance and busiest weeks.
// Each is chosen independently. ok is false when weeks is empty.
func FindPeaks(weeks []model.WeeklyAggregate) (peaks model.Peaks, ok bool) {
	if len(weeks) == 0 {
		return model.Peaks{}, false
	}

	peaks.Calories = weeks[MaxBy(weeks, func(w model.WeeklyAggregate) float64 { return w.Calories })]
	peaks.Distance = weeks[MaxBy(weeks, func(w model.WeeklyAggregate) float64 { return w.Distance })]
	peaks.Workouts = weeks[MaxBy(weeks, func(w model.WeeklyAggregate) float64 { return float64(w.WorkoutCount) })]
	return peaks, true
}
