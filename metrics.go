package ireval

import (
	"math"
)

// topK returns the scoring window: the leading min(k, len(predicted))
// elements of predicted. Rankings shorter than k are used as-is.
func topK(predicted []int, k int) []int {
	if k < len(predicted) {
		return predicted[:k]
	}
	return predicted
}

// retrieved counts the distinct members of rel that appear in window.
// Duplicate occurrences of an item count once.
func retrieved(rel RelevanceSet, window []int) int {
	seen := make(map[int]struct{}, len(window))
	n := 0
	for _, id := range window {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if rel.Contains(id) {
			n++
		}
	}
	return n
}

// Recall computes the fraction of the relevant items that are retrieved in
// the top-k of predicted. An empty actual fails with ErrEmptyRelevance; a
// query with no relevant items cannot be scored for recall.
func Recall(actual, predicted []int, k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	rel := NewRelevanceSet(actual...)
	if len(rel) == 0 {
		return 0, ErrEmptyRelevance
	}
	return float64(retrieved(rel, topK(predicted, k))) / float64(len(rel)), nil
}

// Precision computes the fraction of the top-k retrieved items that are
// relevant. The denominator is the retrieved window size min(k,
// len(predicted)); an empty predicted fails with ErrEmptyRanking.
func Precision(actual, predicted []int, k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	window := topK(predicted, k)
	if len(window) == 0 {
		return 0, ErrEmptyRanking
	}
	rel := NewRelevanceSet(actual...)
	return float64(retrieved(rel, window)) / float64(len(window)), nil
}

// F1 computes the harmonic mean of Precision and Recall at the same cutoff.
// When both are zero the result is defined as zero.
func F1(actual, predicted []int, k int) (float64, error) {
	precision, err := Precision(actual, predicted, k)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(actual, predicted, k)
	if err != nil {
		return 0, err
	}
	if precision+recall == 0 {
		return 0, nil
	}
	return (2 * precision * recall) / (precision + recall), nil
}

// AveragePrecision accumulates precision at each rank in the top-k where a
// relevant item appears, normalised by the total number of relevant items.
// A ranking that hits nothing in the window scores zero; an empty actual
// fails with ErrEmptyRelevance.
func AveragePrecision(actual, predicted []int, k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	rel := NewRelevanceSet(actual...)
	if len(rel) == 0 {
		return 0, ErrEmptyRelevance
	}
	hits := 0
	var sum float64
	for i, id := range topK(predicted, k) {
		if rel.Contains(id) {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}
	return sum / float64(len(rel)), nil
}

// ReciprocalRank computes the inverse rank of the first relevant item in the
// top-k, or zero when no relevant item appears in the window.
func ReciprocalRank(actual, predicted []int, k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	rel := NewRelevanceSet(actual...)
	for i, id := range topK(predicted, k) {
		if rel.Contains(id) {
			return 1 / float64(i+1), nil
		}
	}
	return 0, nil
}

// NDCG computes normalised discounted cumulative gain at k under binary
// relevance. Gain at rank r is discounted by log2(r+1); the ideal ranking
// places all relevant items first, so IDCG sums the discounts of the first
// min(k, |actual|) ranks. A query with no relevant items scores zero.
func NDCG(actual, predicted []int, k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	rel := NewRelevanceSet(actual...)
	var dcg float64
	for i, id := range topK(predicted, k) {
		if rel.Contains(id) {
			dcg += 1 / math.Log2(float64(i)+2)
		}
	}
	ideal := len(rel)
	if k < ideal {
		ideal = k
	}
	var idcg float64
	for i := 0; i < ideal; i++ {
		idcg += 1 / math.Log2(float64(i)+2)
	}
	if idcg == 0 {
		return 0, nil
	}
	return dcg / idcg, nil
}
