package engine

import (
	"errors"
	"fmt"

	"bikeroom-analytics/internal/model"
)

// ErrInvalidPredicate marks a predicate referencing a field that does not
// exist on the dataset schema, or one applied to a field of the wrong kind.
var ErrInvalidPredicate = errors.New("invalid predicate")

// Filter applies a conjunction of predicates over the dataset and returns
// the matching subset. The source dataset is never mutated; an empty
// predicate list returns it unchanged. A zero-row result is a valid
// outcome, not an error.
func Filter(ds model.Dataset, predicates []model.Predicate) (model.Dataset, error) {
	if len(predicates) == 0 {
		return ds, nil
	}

	// Pre-build membership lookup sets and validate every predicate before
	// touching any record, so a bad field name fails the whole call.
	sets := make([]map[string]bool, len(predicates))
	for i, p := range predicates {
		switch p.Kind {
		case model.PredicateIn:
			if _, ok := (model.Record{}).Categorical(p.Field); !ok {
				return nil, fmt.Errorf("%w: no categorical field %q", ErrInvalidPredicate, p.Field)
			}
			set := make(map[string]bool, len(p.Values))
			for _, v := range p.Values {
				set[v] = true
			}
			sets[i] = set
		case model.PredicateAtLeast:
			if _, ok := (model.Record{}).Numeric(p.Field); !ok {
				return nil, fmt.Errorf("%w: no numeric field %q", ErrInvalidPredicate, p.Field)
			}
		default:
			return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidPredicate, p.Kind)
		}
	}

	out := make(model.Dataset, 0, len(ds))
	for _, rec := range ds {
		if matches(rec, predicates, sets) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// matches reports whether a record satisfies every predicate
func matches(rec model.Record, predicates []model.Predicate, sets []map[string]bool) bool {
	for i, p := range predicates {
		switch p.Kind {
		case model.PredicateIn:
			val, _ := rec.Categorical(p.Field)
			if !sets[i][val] {
				return false
			}
		case model.PredicateAtLeast:
			val, _ := rec.Numeric(p.Field)
			// Inclusive: a threshold equal to the field's global minimum
			// keeps every record.
			if val < p.Min {
				return false
			}
		}
	}
	return true
}
