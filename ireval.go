// Package ireval implements ranking-quality metrics for information
// retrieval experiments: recall, precision, F-measure, average precision,
// reciprocal rank and nDCG over ranked lists of item identifiers, plus the
// mean variants (MAP, MRR) over collections of queries.
//
// All functions are pure; identifiers are opaque ints and relevance is
// binary membership in the ground-truth set.
package ireval

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidCutoff indicates a cutoff below 1.
	ErrInvalidCutoff = errors.New("cutoff must be at least 1")
	// ErrEmptyRelevance indicates a query with no ground-truth relevant
	// items where a metric divides by the size of the relevance set.
	ErrEmptyRelevance = errors.New("relevance set is empty")
	// ErrEmptyRanking indicates an empty ranked list where a metric divides
	// by the number of retrieved items.
	ErrEmptyRanking = errors.New("ranked list is empty")
	// ErrNoQueries indicates an empty collection passed to a mean metric.
	ErrNoQueries = errors.New("no queries to average over")
)

// RelevanceSet is the set of ground-truth relevant item identifiers for a
// single query.
type RelevanceSet map[int]struct{}

// NewRelevanceSet creates a relevance set from item identifiers, collapsing
// duplicates.
func NewRelevanceSet(ids ...int) RelevanceSet {
	r := make(RelevanceSet, len(ids))
	for _, id := range ids {
		r[id] = struct{}{}
	}
	return r
}

// Contains reports whether id is relevant.
func (r RelevanceSet) Contains(id int) bool {
	_, ok := r[id]
	return ok
}

// Query pairs the ground-truth relevant items for a single query with the
// ranked list predicted for it, most confident first.
type Query struct {
	Actual    []int
	Predicted []int
}
