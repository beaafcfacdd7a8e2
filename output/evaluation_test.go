package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hscells/ireval/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scores = map[string]map[string]float64{
	"1": {"Recall@3": 1, "AP@3": 1},
	"2": {"Recall@3": 1, "AP@3": 0.5},
}

func TestJsonEvaluationFormatter(t *testing.T) {
	s, err := output.JsonEvaluationFormatter(scores)
	require.NoError(t, err)

	var decoded map[string]map[string]float64
	require.NoError(t, json.Unmarshal([]byte(s), &decoded))
	assert.Equal(t, scores, decoded)
}

func TestCsvEvaluationFormatter(t *testing.T) {
	s, err := output.CsvEvaluationFormatter(scores)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Topic,AP@3,Recall@3", lines[0])
	assert.Equal(t, "1,1,1", lines[1])
	assert.Equal(t, "2,0.5,1", lines[2])
}
