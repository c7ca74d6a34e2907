package formatter

import (
	"github.com/penwyp/go-peloton-weekly/internal/core/model"
)

// Report is everything a formatter renders: the weeks in ascending order and
// the figures derived from them.
type Report struct {
	Discipline string
	Weeks      []model.WeeklyAggregate
	Summary    model.Summary
	Peaks      model.Peaks
}

// Formatter renders a Report.
type Formatter interface {
	Format(report *Report) error
}
