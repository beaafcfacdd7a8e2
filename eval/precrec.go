package eval

import (
	"fmt"

	"github.com/hscells/ireval"
	"github.com/hscells/trecresults"
)

// RecallAtK calculates recall at cutoff K.
type RecallAtK struct{ K int }

func (e RecallAtK) Name() string {
	return fmt.Sprintf("Recall@%d", e.K)
}

func (e RecallAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.Recall(actual, predicted, e.K)
}

// PrecisionAtK calculates precision at cutoff K.
type PrecisionAtK struct{ K int }

func (e PrecisionAtK) Name() string {
	return fmt.Sprintf("Precision@%d", e.K)
}

func (e PrecisionAtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.Precision(actual, predicted, e.K)
}

// F1AtK calculates the harmonic mean of precision and recall at cutoff K.
type F1AtK struct{ K int }

func (e F1AtK) Name() string {
	return fmt.Sprintf("F1@%d", e.K)
}

func (e F1AtK) Score(results *trecresults.ResultList, qrels trecresults.Qrels) (float64, error) {
	actual, predicted := relevance(results, qrels)
	return ireval.F1(actual, predicted, e.K)
}
