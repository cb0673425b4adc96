// Package export renders comment collections as downloadable CSV.
package export

import (
	"strings"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

const (
	csvHeader         = "Date,User Email,Comment,Sentiment"
	csvDateFormat     = "01/02/2006"
	notAnalyzedColumn = "Not analyzed"
)

// CommentsCSV renders one row per comment under a fixed header. The comment
// content is double-quoted with internal quotes doubled; a comment without a
// computed sentiment falls back to "Not analyzed".
func CommentsCSV(comments []domain.Comment) []byte {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, comment := range comments {
		sentiment := string(comment.Sentiment)
		if sentiment == "" {
			sentiment = notAnalyzedColumn
		}
		b.WriteByte('\n')
		b.WriteString(comment.Timestamp.Format(csvDateFormat))
		b.WriteByte(',')
		b.WriteString(comment.UserEmail)
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(comment.Content, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(sentiment)
	}

	return []byte(b.String())
}

// Filename derives the download name from a draft title: every
// non-alphanumeric character becomes an underscore, suffixed _comments.csv.
func Filename(draftTitle string) string {
	mapped := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, draftTitle)
	return mapped + "_comments.csv"
}
