package formatter

import (
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

func week(start string, calories, distance, output float64, count int) model.WeeklyAggregate {
	t, err := time.Parse(model.DateLayout, start)
	if err != nil {
		panic(err)
	}
	return model.WeeklyAggregate{WeekStart: t, Calories: calories, Distance: distance, Output: output, WorkoutCount: count}
}

// singleWeekReport is one 300 kcal, 5 mile, 150 kJ ride in the week of
// 2024-01-01.
func singleWeekReport() *Report {
	w := week("2024-01-01", 300, 5.0, 150, 1)
	return &Report{
		Discipline: model.DisciplineCycling,
		Weeks:      []model.WeeklyAggregate{w},
		Summary: model.Summary{
			Weeks: 1, Workouts: 1,
			TotalCalories: 300, AverageCalories: 300,
			TotalDistance: 5, AverageDistance: 5,
			TotalOutput: 150, AverageOutput: 150,
		},
		Peaks: model.Peaks{Calories: w, Distance: w, Workouts: w},
	}
}

func multiWeekReport() *Report {
	w1 := week("2024-01-01", 1834, 31.456, 912, 4)
	w2 := week("2024-01-08", 2210, 28.1, 1045, 4)
	w3 := week("2024-01-15", 640, 40.5, 300, 2)
	return &Report{
		Discipline: model.DisciplineCycling,
		Weeks:      []model.WeeklyAggregate{w1, w2, w3},
		Summary: model.Summary{
			Weeks: 3, Workouts: 10,
			TotalCalories: 4684, AverageCalories: 4684.0 / 3,
			TotalDistance: 100.056, AverageDistance: 100.056 / 3,
			TotalOutput: 2257, AverageOutput: 2257.0 / 3,
		},
		Peaks: model.Peaks{Calories: w2, Distance: w3, Workouts: w1},
	}
}
