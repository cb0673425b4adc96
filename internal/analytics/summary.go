package analytics

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultMaxKeywords is the keyword budget for Summarize.
	DefaultMaxKeywords = 6

	noFeedbackSummary = "No feedback available to summarize."
	noTopicsSummary   = "Feedback contains varied inputs without dominant topics."
)

// summaryStopwords is broader than the word-cloud set: it additionally
// covers pronouns, auxiliaries and other glue words that would otherwise
// dominate keyword extraction.
var summaryStopwords = map[string]struct{}{
	"the": {}, "is": {}, "in": {}, "at": {}, "of": {}, "a": {}, "and": {},
	"to": {}, "for": {}, "on": {}, "with": {}, "this": {}, "that": {},
	"it": {}, "as": {}, "be": {}, "are": {}, "was": {}, "were": {}, "by": {},
	"an": {}, "or": {}, "from": {}, "we": {}, "you": {}, "your": {},
	"our": {}, "their": {}, "they": {}, "them": {}, "i": {}, "me": {},
	"my": {}, "us": {}, "but": {}, "not": {}, "have": {}, "has": {},
	"had": {}, "can": {}, "could": {}, "should": {}, "would": {},
	"will": {}, "shall": {}, "do": {}, "does": {}, "did": {}, "about": {},
	"into": {}, "over": {}, "more": {}, "most": {}, "some": {}, "any": {},
	"such": {}, "no": {}, "nor": {}, "only": {}, "own": {}, "same": {},
	"so": {}, "than": {}, "too": {}, "very": {}, "s": {}, "t": {},
	"just": {}, "don": {}, "now": {},
}

// Summarize produces a short templated synopsis of the texts from their top
// keywords. Empty input returns a fixed no-feedback sentence; input whose
// tokens are all stopwords or too short returns a fixed no-topics sentence.
// Never fails, whatever the input.
func Summarize(texts []string, maxKeywords int) string {
	if len(texts) == 0 {
		return noFeedbackSummary
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	counts := make(map[string]int)
	for _, text := range texts {
		for _, token := range splitWords(text) {
			if len(token) < 3 {
				continue
			}
			if _, skip := summaryStopwords[token]; skip {
				continue
			}
			counts[token]++
		}
	}

	keywords := make([]string, 0, len(counts))
	for token := range counts {
		keywords = append(keywords, token)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	if len(keywords) == 0 {
		return noTopicsSummary
	}

	primary := keywords
	var secondary []string
	if len(keywords) > 3 {
		primary = keywords[:3]
		secondary = keywords[3:]
		if len(secondary) > 3 {
			secondary = secondary[:3]
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Feedback centers on %s", strings.Join(primary, ", "))
	if len(secondary) > 0 {
		b.WriteString(" and related themes.")
		fmt.Fprintf(&b, " Other recurring topics include %s.", strings.Join(secondary, ", "))
	} else {
		b.WriteString(".")
	}
	return b.String()
}
