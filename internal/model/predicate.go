package model

// PredicateKind identifies the comparison a predicate performs
type PredicateKind string

const (
	// PredicateIn keeps records whose field value is a member of a set
	PredicateIn PredicateKind = "in"
	// PredicateAtLeast keeps records whose numeric field value is >= Min (inclusive)
	PredicateAtLeast PredicateKind = "at_least"
)

// Predicate is a single filter condition over one field.
// Multiple predicates combine via logical AND.
type Predicate struct {
	Kind   PredicateKind `json:"kind"`
	Field  string        `json:"field"`
	Values []string      `json:"values,omitempty"` // membership set for PredicateIn
	Min    float64       `json:"min,omitempty"`    // inclusive threshold for PredicateAtLeast
}

// In builds a membership predicate over a categorical field
func In(field string, values ...string) Predicate {
	return Predicate{Kind: PredicateIn, Field: field, Values: values}
}

// AtLeast builds an inclusive minimum-threshold predicate over a numeric field
func AtLeast(field string, min float64) Predicate {
	return Predicate{Kind: PredicateAtLeast, Field: field, Min: min}
}
