// Package eval scores TREC run files against relevance judgments using the
// metrics in the parent package.
package eval

import (
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
)

// Evaluator is an interface for evaluating one topic's retrieved documents
// against its relevance judgments.
type Evaluator interface {
	Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error)
	Name() string
}

// relevance converts one topic's judgments and result list into the
// identifier slices the core metrics operate on. Distinct document
// identifiers are interned to dense ints; judgments with a positive score
// are relevant.
func relevance(results *trecresults.ResultList, qrels trecresults.Qrels) (actual, predicted []int) {
	ids := make(map[string]int, len(qrels)+len(*results))
	intern := func(docID string) int {
		if id, ok := ids[docID]; ok {
			return id
		}
		id := len(ids)
		ids[docID] = id
		return id
	}
	for docID, qrel := range qrels {
		if qrel.Score > 0 {
			actual = append(actual, intern(docID))
		}
	}
	for _, result := range *results {
		predicted = append(predicted, intern(result.DocId))
	}
	return
}

// Evaluate scores every topic in a run using the supplied evaluation
// measurements.
func Evaluate(evaluators []Evaluator, results *trecresults.ResultList, qrels trecresults.QrelsFile) (map[string]map[string]float64, error) {
	// First create a map of topic->results.
	resultMap := map[string]trecresults.ResultList{}
	for _, res := range *results {
		resultMap[res.Topic] = append(resultMap[res.Topic], res)
	}

	// Next create a map of topic->evaluator:score.
	scores := map[string]map[string]float64{}
	for topic, resultList := range resultMap {
		scores[topic] = map[string]float64{}
		for _, evaluator := range evaluators {
			score, err := evaluator.Score(&resultList, qrels.Qrels[topic])
			if err != nil {
				return nil, errors.Wrapf(err, "topic %s: %s", topic, evaluator.Name())
			}
			scores[topic][evaluator.Name()] = score
		}
	}

	return scores, nil
}
