package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyInput(t *testing.T) {
	assert.Equal(t, "No feedback available to summarize.", Summarize(nil, DefaultMaxKeywords))
	assert.Equal(t, "No feedback available to summarize.", Summarize([]string{}, DefaultMaxKeywords))
}

func TestSummarize_NoDominantTopics(t *testing.T) {
	// every token is either a stopword or shorter than three characters
	got := Summarize([]string{"it is so", "a b c", "!!! ???"}, DefaultMaxKeywords)
	assert.Equal(t, "Feedback contains varied inputs without dominant topics.", got)
}

func TestSummarize_PrimaryKeywordsOnly(t *testing.T) {
	got := Summarize([]string{
		"taxation taxation taxation",
		"compliance compliance",
		"penalties",
	}, DefaultMaxKeywords)

	assert.Equal(t, "Feedback centers on taxation, compliance, penalties.", got)
}

func TestSummarize_PrimaryAndSecondaryKeywords(t *testing.T) {
	got := Summarize([]string{
		"taxation taxation taxation taxation taxation taxation",
		"compliance compliance compliance compliance compliance",
		"penalties penalties penalties penalties",
		"audits audits audits",
		"exemptions exemptions",
		"deadlines",
	}, DefaultMaxKeywords)

	assert.Equal(t,
		"Feedback centers on taxation, compliance, penalties and related themes."+
			" Other recurring topics include audits, exemptions, deadlines.",
		got)
}

func TestSummarize_RespectsMaxKeywords(t *testing.T) {
	got := Summarize([]string{
		"taxation taxation taxation",
		"compliance compliance",
		"penalties penalties penalties penalties",
	}, 1)
	assert.Equal(t, "Feedback centers on penalties.", got)
}

func TestSummarize_NeverPanics(t *testing.T) {
	inputs := [][]string{
		{""},
		{"1234 5678"},
		{"\x00\xff"},
		{"the the the"},
	}
	for _, texts := range inputs {
		assert.NotPanics(t, func() { Summarize(texts, DefaultMaxKeywords) })
	}
}

func TestSummarize_CountsDigitBearingTokens(t *testing.T) {
	// numeric tokens of length >= 3 are legitimate keywords for the summarizer
	got := Summarize([]string{"2024 2024 2024 budget budget"}, DefaultMaxKeywords)
	assert.Equal(t, "Feedback centers on 2024, budget.", got)
}
