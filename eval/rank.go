package eval

import (
	"fmt"
	"sort"

	"github.com/hscells/ireval"
	"github.com/hscells/trecresults"
)

// AveragePrecisionAtK calculates average precision at cutoff K.
type AveragePrecisionAtK struct{ K int }

func (e AveragePrecisionAtK) Name() string {
	return fmt.Sprintf("AP@%d", e.K)
}

func (e AveragePrecisionAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.AveragePrecision(actual, predicted, e.K)
}

// ReciprocalRankAtK calculates the reciprocal rank of the first relevant
// document within cutoff K.
type ReciprocalRankAtK struct{ K int }

func (e ReciprocalRankAtK) Name() string {
	return fmt.Sprintf("RR@%d", e.K)
}

func (e ReciprocalRankAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.ReciprocalRank(actual, predicted, e.K)
}

// NDCGAtK calculates normalised discounted cumulative gain at cutoff K.
type NDCGAtK struct{ K int }

func (e NDCGAtK) Name() string {
	return fmt.Sprintf("nDCG@%d", e.K)
}

func (e NDCGAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.NDCG(actual, predicted, e.K)
}

// MeanAveragePrecision averages average precision at cutoff k over every
// topic in the qrels. Topics judged but absent from the run score against an
// empty ranking.
func MeanAveragePrecision(results *trecresults.ResultList, qrels trecresults.QrelsFile, k int) (float64, error) {
	return ireval.MeanAveragePrecision(queries(results, qrels), k)
}

// MeanReciprocalRank averages reciprocal rank at cutoff k over every topic
// in the qrels.
func MeanReciprocalRank(results *trecresults.ResultList, qrels trecresults.QrelsFile, k int) (float64, error) {
	return ireval.MeanReciprocalRank(queries(results, qrels), k)
}

// queries assembles one core query per judged topic, in sorted topic order
// so that aggregate failures report stable query indices.
func queries(results *trecresults.ResultList, qrels trecresults.QrelsFile) []ireval.Query {
	resultMap := map[string]trecresults.ResultList{}
	for _, res := range *results {
		resultMap[res.Topic] = append(resultMap[res.Topic], res)
	}

	topics := make([]string, 0, len(qrels.Qrels))
	for topic := range qrels.Qrels {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	qs := make([]ireval.Query, len(topics))
	for i, topic := range topics {
		resultList := resultMap[topic]
		actual, predicted := relevance(&resultList, qrels.Qrels[topic])
		qs[i] = ireval.Query{Actual: actual, Predicted: predicted}
	}
	return qs
}
