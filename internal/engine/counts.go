package engine

import (
	"fmt"
	"sort"
	"strconv"

	"bikeroom-analytics/internal/model"
)

// ValueCounts tallies the occurrences of each distinct value of a field,
// for categorical or discretized-numeric histograms. Rows are sorted by
// field value ascending — numerically for numeric fields, lexicographically
// otherwise. An empty dataset yields an empty slice.
func ValueCounts(ds model.Dataset, field string) ([]model.ValueCount, error) {
	_, isCategorical := (model.Record{}).Categorical(field)
	_, isNumeric := (model.Record{}).Numeric(field)
	if !isCategorical && !isNumeric {
		return nil, fmt.Errorf("%w: no countable field %q", ErrInvalidPredicate, field)
	}

	counts := make(map[string]int)
	for _, rec := range ds {
		var v string
		if isCategorical {
			v, _ = rec.Categorical(field)
		} else {
			n, _ := rec.Numeric(field)
			v = strconv.FormatFloat(n, 'f', -1, 64)
		}
		counts[v]++
	}

	out := make([]model.ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, model.ValueCount{Value: v, Count: c})
	}

	if isNumeric {
		sort.Slice(out, func(i, j int) bool {
			a, _ := strconv.ParseFloat(out[i].Value, 64)
			b, _ := strconv.ParseFloat(out[j].Value, 64)
			return a < b
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	}
	return out, nil
}
