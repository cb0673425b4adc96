package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

// maxFrequencyEntries bounds the word-cloud listing.
const maxFrequencyEntries = 50

var wordRunPattern = regexp.MustCompile(`[a-z]{3,}`)

// frequencyStopwords is the short function-word set excluded from the word
// cloud. The summarizer uses its own, broader set.
var frequencyStopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// WordFrequencies joins the input texts, extracts lowercase alphabetic runs
// of length >= 3, drops stopwords and returns the remaining terms ranked by
// descending count, capped at 50 entries. Ties break alphabetically so the
// ordering is deterministic for a fixed input. Empty input yields an empty
// (non-nil) slice.
func WordFrequencies(texts []string) []domain.FrequencyEntry {
	joined := strings.ToLower(strings.Join(texts, " "))

	counts := make(map[string]int)
	for _, word := range wordRunPattern.FindAllString(joined, -1) {
		if _, skip := frequencyStopwords[word]; skip {
			continue
		}
		counts[word]++
	}

	entries := make([]domain.FrequencyEntry, 0, len(counts))
	for term, count := range counts {
		entries = append(entries, domain.FrequencyEntry{Term: term, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})

	if len(entries) > maxFrequencyEntries {
		entries = entries[:maxFrequencyEntries]
	}
	return entries
}
