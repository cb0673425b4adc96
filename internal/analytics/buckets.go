package analytics

import (
	"sort"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

// bucketDateFormat renders calendar-date labels for the trend series.
const bucketDateFormat = "01/02/2006"

// BucketByDate groups timestamps by calendar date and counts membership per
// bucket. The result is sorted ascending by the underlying date value, not
// by label string - a lexicographic label sort would put "12/01/2024" after
// "02/01/2025". Empty and single-entry inputs are valid and produce the
// obvious series.
func BucketByDate(timestamps []time.Time) []domain.TimeBucket {
	counts := make(map[string]int)
	dates := make(map[string]time.Time)
	for _, ts := range timestamps {
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		label := day.Format(bucketDateFormat)
		counts[label]++
		dates[label] = day
	}

	buckets := make([]domain.TimeBucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, domain.TimeBucket{Date: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return dates[buckets[i].Date].Before(dates[buckets[j].Date])
	})
	return buckets
}
