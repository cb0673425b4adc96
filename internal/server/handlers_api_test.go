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

func TestListDrafts_ReturnsCatalog(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/drafts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var drafts []domain.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drafts))
	assert.NotEmpty(t, drafts)
	assert.NotEmpty(t, drafts[0].Title)
}

func TestGetDraft_UnknownID(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/drafts/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"not_found"`)
}

func TestGetDraft_NonNumericID(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/drafts/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListComments_EmptyDraft(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/drafts/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitComment_RequiresSession(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/drafts/1/comments", `{"content":"hello"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitComment_StoresWithSentiment(t *testing.T) {
	env := newTestServer(t)
	cookies := env.citizenSession(t, "jan@example.com")

	rec := env.do(t, http.MethodPost, "/api/drafts/1/comments", `{"content":"This is a great and helpful draft"}`, cookies...)
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
	assert.Equal(t, domain.SentimentPositive, comment.Sentiment)
	assert.Equal(t, "jan@example.com", comment.UserEmail)
	assert.Equal(t, 1, comment.DraftID)

	rec = env.do(t, http.MethodGet, "/api/drafts/1/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, comment.ID, listed[0].ID)
}

func TestSubmitComment_EmptyContent(t *testing.T) {
	env := newTestServer(t)
	cookies := env.citizenSession(t, "jan@example.com")

	rec := env.do(t, http.MethodPost, "/api/drafts/1/comments", `{"content":"   "}`, cookies...)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitComment_UnknownDraft(t *testing.T) {
	env := newTestServer(t)
	cookies := env.citizenSession(t, "jan@example.com")

	rec := env.do(t, http.MethodPost, "/api/drafts/999/comments", `{"content":"hello"}`, cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMyComments_FiltersByUser(t *testing.T) {
	env := newTestServer(t)
	cookies := env.citizenSession(t, "jan@example.com")

	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 1, UserEmail: "jan@example.com",
		Content: "mine", Timestamp: time.Now().UTC(),
	})
	env.seedComment(t, domain.Comment{
		ID: uuid.New(), DraftID: 1, UserEmail: "other@example.com",
		Content: "not mine", Timestamp: time.Now().UTC(),
	})

	rec := env.do(t, http.MethodGet, "/api/me/comments", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "mine", comments[0].Content)
}
