// Package output provides different formats of output for evaluation
// results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
)

// EvaluationFormatter formats the topic->metric->score maps produced by
// eval.Evaluate.
type EvaluationFormatter func(map[string]map[string]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs results in CSV format, one row per topic
// with metric columns in sorted order. Topics missing a metric leave the
// cell empty.
func CsvEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	topics := make([]string, 0, len(results))
	headerSet := map[string]struct{}{}
	for topic, scores := range results {
		topics = append(topics, topic)
		for name := range scores {
			headerSet[name] = struct{}{}
		}
	}
	sort.Strings(topics)

	headers := make([]string, 0, len(headerSet))
	for name := range headerSet {
		headers = append(headers, name)
	}
	sort.Strings(headers)

	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	if err := w.Write(append([]string{"Topic"}, headers...)); err != nil {
		return "", err
	}
	for _, topic := range topics {
		record := make([]string, len(headers)+1)
		record[0] = topic
		for i, name := range headers {
			if score, ok := results[topic][name]; ok {
				record[i+1] = strconv.FormatFloat(score, 'f', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}
