package analytics

import (
	"strings"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

// ScoredText is the result of classifying one text in a bulk run.
type ScoredText struct {
	Text      string           `json:"text"`
	Sentiment domain.Sentiment `json:"sentiment"`
	Score     int              `json:"score"`
}

// Score sums the polarity weights of all lexicon terms found in text.
// Tokens are matched after lowercasing and stripping non-alphanumeric runes;
// the score is not normalized by text length.
func Score(text string) int {
	score := 0
	for _, token := range splitWords(text) {
		score += polarityLexicon[token]
	}
	return score
}

// Classify maps a text to positive, negative or neutral by the sign of its
// lexicon score. Empty or whitespace-only text scores zero and is neutral,
// as is any text with no lexicon matches. Pure function of its input.
func Classify(text string) domain.Sentiment {
	switch score := Score(text); {
	case score > 0:
		return domain.SentimentPositive
	case score < 0:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// ClassifyBulk applies Classify to each text independently, preserving
// input order.
func ClassifyBulk(texts []string) []ScoredText {
	results := make([]ScoredText, len(texts))
	for i, text := range texts {
		results[i] = ScoredText{
			Text:      text,
			Sentiment: Classify(text),
			Score:     Score(text),
		}
	}
	return results
}

// Tally counts classifier labels over a comment collection. The Total field
// always equals the size of the input.
func Tally(comments []domain.Comment) domain.SentimentTally {
	tally := domain.SentimentTally{Total: len(comments)}
	for _, comment := range comments {
		switch Classify(comment.Content) {
		case domain.SentimentPositive:
			tally.Positive++
		case domain.SentimentNegative:
			tally.Negative++
		default:
			tally.Neutral++
		}
	}
	return tally
}

// splitWords lowercases text, replaces every non-alphanumeric rune with a
// space and splits on whitespace.
func splitWords(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return ' '
	}, text)
	return strings.Fields(mapped)
}
