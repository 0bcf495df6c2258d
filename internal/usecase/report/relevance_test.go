package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateAcceptsMedicalQueries(t *testing.T) {
	gate := NewGate()

	accepted := []string{
		"What is my blood pressure reading?",
		"Explain my glucose level results",
		"What does low hemoglobin mean?",
		"Tell me about my cholesterol",
		"Is my creatinine elevated?",
		"why does my report mention thyroid",
	}
	for _, q := range accepted {
		assert.True(t, gate.IsMedicalQuery(q), "expected accept: %q", q)
	}
}

func TestGateRejectsOffTopicQueries(t *testing.T) {
	gate := NewGate()

	rejected := []string{
		"What's the weather today?",
		"Recommend a good pizza place",
		"Who won the football game?",
		"",
	}
	for _, q := range rejected {
		assert.False(t, gate.IsMedicalQuery(q), "expected reject: %q", q)
	}
}

func TestGateIsIdempotent(t *testing.T) {
	gate := NewGate()
	queries := []string{
		"What is my blood pressure reading?",
		"What's the weather today?",
	}
	for _, q := range queries {
		first := gate.IsMedicalQuery(q)
		second := gate.IsMedicalQuery(q)
		assert.Equal(t, first, second, "gate not idempotent for %q", q)
	}
}

func TestGateIsCaseInsensitive(t *testing.T) {
	gate := NewGate()
	assert.True(t, gate.IsMedicalQuery("EXPLAIN MY GLUCOSE LEVEL RESULTS"))
	assert.True(t, gate.IsMedicalQuery("what does LOW HEMOGLOBIN mean?"))
}
