package domain

// Sentiment is the polarity label derived from lexicon-based scoring.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentTally counts labels over a comment set. Total always equals
// Positive+Negative+Neutral and the size of the input collection.
type SentimentTally struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}

// FrequencyEntry is a (term, count) pair from word-frequency extraction.
// Derived on demand, never persisted.
type FrequencyEntry struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TimeBucket is one point of the comments-per-day trend series.
type TimeBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Report is the aggregated analytics view for one draft.
type Report struct {
	DraftID     int              `json:"draftId"`
	Tally       SentimentTally   `json:"sentiment"`
	Frequencies []FrequencyEntry `json:"wordFrequency"`
	Summary     string           `json:"summary"`
	Trend       []TimeBucket     `json:"trend"`
}

// AdminStats is the portal-wide counters shown on the admin dashboard.
type AdminStats struct {
	TotalUsers      int         `json:"totalUsers"`
	TotalComments   int         `json:"totalComments"`
	CommentsByDraft map[int]int `json:"commentsByDraft"`
}
