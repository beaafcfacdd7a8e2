package ireval

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// MeanAveragePrecision computes AveragePrecision at k independently for each
// query and averages the scores. An empty collection fails with
// ErrNoQueries; a degenerate query fails the whole mean rather than being
// silently skipped.
func MeanAveragePrecision(queries []Query, k int) (float64, error) {
	return mean(queries, k, AveragePrecision)
}

// MeanReciprocalRank computes ReciprocalRank at k independently for each
// query and averages the scores. An empty collection fails with ErrNoQueries.
func MeanReciprocalRank(queries []Query, k int) (float64, error) {
	return mean(queries, k, ReciprocalRank)
}

func mean(queries []Query, k int, metric func(actual, predicted []int, k int) (float64, error)) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidCutoff
	}
	if len(queries) == 0 {
		return 0, ErrNoQueries
	}
	scores := make([]float64, len(queries))
	for i, query := range queries {
		score, err := metric(query.Actual, query.Predicted, k)
		if err != nil {
			return 0, errors.Wrapf(err, "query %d", i)
		}
		scores[i] = score
	}
	return stat.Mean(scores, nil), nil
}
