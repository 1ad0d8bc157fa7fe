package engine

import (
	"fmt"
	"sort"
	"strings"

	"bikeroom-analytics/internal/model"
)

// GroupBy rolls the dataset up by the given categorical fields and applies
// each reducer per group. Groups with zero matching records are never
// materialized, so the view contains no implicit zero-fill rows. With no
// group fields, the whole dataset forms a single group.
func GroupBy(ds model.Dataset, groupFields []string, reducers map[string]model.Reducer) (model.AggregateView, error) {
	view := model.AggregateView{GroupFields: groupFields}

	for _, f := range groupFields {
		if _, ok := (model.Record{}).Categorical(f); !ok {
			return view, fmt.Errorf("%w: no categorical field %q", ErrInvalidPredicate, f)
		}
	}
	for name, red := range reducers {
		if red.Kind == model.ReducerCount {
			continue
		}
		if _, ok := (model.Record{}).Numeric(red.Field); !ok {
			return view, fmt.Errorf("%w: reducer %q references no numeric field %q", ErrInvalidPredicate, name, red.Field)
		}
	}

	type bucket struct {
		key   []string
		sums  map[string]float64
		count int
	}

	buckets := make(map[string]*bucket)
	for _, rec := range ds {
		key := groupKey(rec, groupFields)
		id := strings.Join(key, "\x1f")
		b, ok := buckets[id]
		if !ok {
			b = &bucket{key: key, sums: make(map[string]float64)}
			buckets[id] = b
		}
		b.count++
		for name, red := range reducers {
			if red.Kind == model.ReducerCount {
				continue
			}
			v, _ := rec.Numeric(red.Field)
			b.sums[name] += v
		}
	}

	rows := make([]model.GroupRow, 0, len(buckets))
	for _, b := range buckets {
		metrics := make(map[string]float64, len(reducers))
		for name, red := range reducers {
			switch red.Kind {
			case model.ReducerSum:
				metrics[name] = b.sums[name]
			case model.ReducerMean:
				metrics[name] = b.sums[name] / float64(b.count)
			case model.ReducerCount:
				metrics[name] = float64(b.count)
			}
		}
		rows = append(rows, model.GroupRow{Key: b.key, Metrics: metrics, RecordCount: b.count})
	}

	// Lexicographic key order keeps table rendering stable across calls.
	sort.Slice(rows, func(i, j int) bool {
		return lessKey(rows[i].Key, rows[j].Key)
	})

	view.Rows = rows
	return view, nil
}

// groupKey extracts the group-key tuple for a record
func groupKey(rec model.Record, groupFields []string) []string {
	if len(groupFields) == 0 {
		return []string{"all"}
	}
	key := make([]string, len(groupFields))
	for i, f := range groupFields {
		key[i], _ = rec.Categorical(f)
	}
	return key
}

func lessKey(a, b []string) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
