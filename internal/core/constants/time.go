package constants

const (
	// Week layout, Monday first
	DaysPerWeek   = 7
	WeekEndOffset = DaysPerWeek - 1

	// DebounceMillis is the quiet period awaited after a change in watch mode.
	DebounceMillis = 250
)
