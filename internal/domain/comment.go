package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comment is a citizen's feedback on a draft. Comments are immutable once
// created and never deleted; the Sentiment label is derived from Content at
// submission time and is not independently editable.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	DraftID   int       `json:"draftId"`
	UserID    string    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

// CommentRepository is an append-only store of comments.
type CommentRepository interface {
	Add(ctx context.Context, comment Comment) error
	ListByDraft(ctx context.Context, draftID int) ([]Comment, error)
	ListByUser(ctx context.Context, userEmail string) ([]Comment, error)
	ListAll(ctx context.Context) ([]Comment, error)
	Count(ctx context.Context) (int, error)
}
