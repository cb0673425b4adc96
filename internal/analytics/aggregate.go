package analytics

import (
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

// Aggregate builds the full analytics report for one draft from a comment
// snapshot: it filters the collection to the draft, then runs the sentiment
// tally, word-frequency extraction, keyword summary and per-day trend over
// the filtered set. Each stage is total over any input, so aggregation has
// no partial-failure mode and nothing is cached between calls.
func Aggregate(draftID int, comments []domain.Comment) domain.Report {
	filtered := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.DraftID == draftID {
			filtered = append(filtered, comment)
		}
	}

	contents := make([]string, len(filtered))
	timestamps := make([]time.Time, len(filtered))
	for i, comment := range filtered {
		contents[i] = comment.Content
		timestamps[i] = comment.Timestamp
	}

	return domain.Report{
		DraftID:     draftID,
		Tally:       Tally(filtered),
		Frequencies: WordFrequencies(contents),
		Summary:     Summarize(contents, DefaultMaxKeywords),
		Trend:       BucketByDate(timestamps),
	}
}
