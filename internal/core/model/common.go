package model

// Export column headers
const (
	ColumnDiscipline = "Fitness Discipline"
	ColumnTimestamp  = "Workout Timestamp"
	ColumnCalories   = "Calories Burned"
	ColumnDistance   = "Distance (mi)"
	ColumnOutput     = "Total Output"
)

// RequiredColumns lists the headers a workout export must carry.
var RequiredColumns = []string{
	ColumnDiscipline,
	ColumnTimestamp,
	ColumnCalories,
	ColumnDistance,
	ColumnOutput,
}

// Disciplines
const (
	DisciplineCycling = "Cycling"
	DisciplineRunning = "Running"
)

// Layouts
const (
	TimestampLayout = "2006-01-02 15:04"
	DateLayout      = "2006-01-02"
)
