package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_RequiresAdmin(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/drafts/1/analytics", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookies := env.citizenSession(t, "jan@example.com")
	rec = env.do(t, http.MethodGet, "/api/drafts/1/analytics", "", cookies...)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnalytics_ReturnsReport(t *testing.T) {
	env := newTestServer(t)
	cookies := env.adminSession(t)

	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 1, UserEmail: "a@b.com",
		Content:   "This is a great draft",
		Timestamp: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		Sentiment: domain.SentimentPositive,
	})
	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 1, UserEmail: "c@d.com",
		Content:   "This draft is terrible",
		Timestamp: time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC),
		Sentiment: domain.SentimentNegative,
	})

	rec := env.do(t, http.MethodGet, "/api/drafts/1/analytics", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.DraftID)
	assert.Equal(t, 2, report.Tally.Total)
	assert.Equal(t, 1, report.Tally.Positive)
	assert.Equal(t, 1, report.Tally.Negative)
	assert.Len(t, report.Trend, 2)
}

func TestAnalytics_UnknownDraft(t *testing.T) {
	env := newTestServer(t)
	cookies := env.adminSession(t)

	rec := env.do(t, http.MethodGet, "/api/drafts/999/analytics", "", cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExport_CSVAttachment(t *testing.T) {
	env := newTestServer(t)
	cookies := env.adminSession(t)

	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 1, UserEmail: "a@b.com",
		Content:   "looks fine",
		Timestamp: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
		Sentiment: domain.SentimentNeutral,
	})

	rec := env.do(t, http.MethodGet, "/api/drafts/1/export", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "_comments.csv")
	assert.Contains(t, rec.Body.String(), "Date,User Email,Comment,Sentiment")
	assert.Contains(t, rec.Body.String(), `01/15/2025,a@b.com,"looks fine",neutral`)
}

func TestStats_CountsPortalActivity(t *testing.T) {
	env := newTestServer(t)
	env.citizenSession(t, "jan@example.com")
	cookies := env.adminSession(t)

	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 2, UserEmail: "jan@example.com",
		Content: "noted", Timestamp: time.Now().UTC(),
	})

	rec := env.do(t, http.MethodGet, "/api/stats", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.AdminStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalComments)
	assert.Equal(t, map[int]int{2: 1}, stats.CommentsByDraft)
}
