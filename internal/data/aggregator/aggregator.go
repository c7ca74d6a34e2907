package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/go-peloton-weekly/internal/core/model"
	"github.com/penwyp/go-peloton-weekly/internal/util"
)

// Aggregator buckets workouts into Monday-Sunday weeks.
type Aggregator struct {
	weekKey func(timestamp string) (time.Time, error)
}

// TaggedRecord is a workout paired with the Monday of its week.
type TaggedRecord struct {
	Week    time.Time
	Record  model.WorkoutRecord
	Metrics model.Metrics
}

// NewAggregator creates an Aggregator using the standard week key.
func NewAggregator() *Aggregator {
	return &Aggregator{weekKey: util.WeekKey}
}

// Tag derives the week key and metrics of every record. The first bad
// timestamp or metric aborts with an error naming its row; no partial result
// is returned.
func (a *Aggregator) Tag(records []model.WorkoutRecord) ([]TaggedRecord, error) {
	tagged := make([]TaggedRecord, 0, len(records))
	for _, record := range records {
		week, err := a.weekKey(record.Timestamp)
		if err != nil {
			return nil, &model.TimestampParseError{Row: record.Row, Value: record.Timestamp, Err: err}
		}

		metrics, err := record.Metrics()
		if err != nil {
			return nil, err
		}

		tagged = append(tagged, TaggedRecord{Week: week, Record: record, Metrics: metrics})
	}
	return tagged, nil
}

// AggregateByWeek groups records by week, sums their metrics, counts them and
// returns one aggregate per week in ascending week order.
func (a *Aggregator) AggregateByWeek(records []model.WorkoutRecord) ([]model.WeeklyAggregate, error) {
	start := time.Now()

	tagged, err := a.Tag(records)
	if err != nil {
		return nil, err
	}

	weeks := make(map[time.Time]*model.WeeklyAggregate)
	for _, t := range tagged {
		week, ok := weeks[t.Week]
		if !ok {
			week = &model.WeeklyAggregate{WeekStart: t.Week}
			weeks[t.Week] = week
		}
		week.Add(t.Metrics)
	}

	result := make([]model.WeeklyAggregate, 0, len(weeks))
	for _, week := range weeks {
		result = append(result, *week)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart.Before(result[j].WeekStart)
	})

	util.LogDebug(fmt.Sprintf("Aggregated %d workouts into %d weeks in %v", len(records), len(result), time.Since(start)))
	return result, nil
}
