package filter

import (
	"fmt"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

// ByDiscipline returns the records whose discipline equals label exactly,
// keeping their original order. An empty result is model.ErrNoMatchingData.
func ByDiscipline(records []model.WorkoutRecord, label string) ([]model.WorkoutRecord, error) {
	var matched []model.WorkoutRecord
	for _, record := range records {
		if record.Discipline == label {
			matched = append(matched, record)
		}
	}

	util.LogDebug(fmt.Sprintf("Discipline filter %q kept %d of %d rows", label, len(matched), len(records)))

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: discipline %q", model.ErrNoMatchingData, label)
	}
	return matched, nil
}
