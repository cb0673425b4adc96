// Package analytics implements the aggregation pipeline behind the admin
// dashboard: lexicon-based sentiment classification, word-frequency
// extraction, keyword summarization and per-day trend bucketing.
//
// Every function here is pure and total: any input, including empty
// collections and strings without alphabetic content, maps to a defined
// trivial result rather than an error. Aggregation is recomputed from the
// current comment snapshot on every call - there is no cache to invalidate.
package analytics
