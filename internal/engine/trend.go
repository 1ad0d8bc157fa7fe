package engine

import (
	"fmt"
	"sort"
	"time"

	"bikeroom-analytics/internal/model"
)

// MonthlyTrend buckets the dataset into (group, calendar month) pairs and
// computes the arithmetic mean of valueField per bucket. Buckets with no
// records are omitted rather than emitted as zero. Rows are ordered by
// group, then month ascending, for stable trend-line rendering. An empty
// dataset yields an empty slice.
func MonthlyTrend(ds model.Dataset, groupField, dateField, valueField string) ([]model.TrendPoint, error) {
	if _, ok := (model.Record{}).Categorical(groupField); !ok {
		return nil, fmt.Errorf("%w: no categorical field %q", ErrInvalidPredicate, groupField)
	}
	if _, ok := (model.Record{}).DateValue(dateField); !ok {
		return nil, fmt.Errorf("%w: no date field %q", ErrInvalidPredicate, dateField)
	}
	if _, ok := (model.Record{}).Numeric(valueField); !ok {
		return nil, fmt.Errorf("%w: no numeric field %q", ErrInvalidPredicate, valueField)
	}

	type bucket struct {
		group string
		month time.Time
		sum   float64
		count int
	}

	type bucketID struct {
		group string
		month time.Time
	}

	buckets := make(map[bucketID]*bucket)
	for _, rec := range ds {
		group, _ := rec.Categorical(groupField)
		date, _ := rec.DateValue(dateField)
		value, _ := rec.Numeric(valueField)

		id := bucketID{group: group, month: monthStart(date)}
		b, ok := buckets[id]
		if !ok {
			b = &bucket{group: id.group, month: id.month}
			buckets[id] = b
		}
		b.sum += value
		b.count++
	}

	points := make([]model.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, model.TrendPoint{
			Group:       b.group,
			Month:       b.month,
			Mean:        b.sum / float64(b.count),
			RecordCount: b.count,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Group != points[j].Group {
			return points[i].Group < points[j].Group
		}
		return points[i].Month.Before(points[j].Month)
	})
	return points, nil
}

// monthStart truncates a date to the first instant of its containing
// calendar month, keeping bucket comparisons well-defined across year
// boundaries.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
