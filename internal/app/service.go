package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/Sohamlkulk1122/E-consultaion/internal/analytics"
	"github.com/Sohamlkulk1122/E-consultaion/internal/catalog"
	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/Sohamlkulk1122/E-consultaion/internal/export"
	"github.com/Sohamlkulk1122/E-consultaion/internal/metrics"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const maxCommentLength = 10_000

// Service is the application layer — the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	comments domain.CommentRepository
	users    domain.UserRepository
	drafts   *catalog.Catalog
	clock    clockwork.Clock
}

// NewService creates the application layer service.
func NewService(comments domain.CommentRepository, users domain.UserRepository, drafts *catalog.Catalog, clock clockwork.Clock) *Service {
	return &Service{
		comments: comments,
		users:    users,
		drafts:   drafts,
		clock:    clock,
	}
}

// Drafts returns the catalog in file order.
func (s *Service) Drafts() []domain.Draft {
	return s.drafts.All()
}

// Draft looks up one draft by id.
func (s *Service) Draft(id int) (*domain.Draft, error) {
	return s.drafts.Get(id)
}

// SubmitComment records a citizen comment on a draft. The sentiment label is
// derived from the content at submission time and stored with the comment.
func (s *Service) SubmitComment(ctx context.Context, draftID int, userID, userEmail, content string) (*domain.Comment, error) {
	if _, err := s.drafts.Get(draftID); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}
	if len(content) > maxCommentLength {
		return nil, domain.ErrCommentTooLong
	}

	comment := domain.Comment{
		ID:        uuid.New(),
		DraftID:   draftID,
		UserID:    userID,
		UserEmail: userEmail,
		Content:   content,
		Timestamp: s.clock.Now().UTC(),
		Sentiment: analytics.Classify(content),
	}

	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, err
	}

	metrics.CommentsSubmitted.WithLabelValues(strconv.Itoa(draftID)).Inc()
	metrics.SentimentLabels.WithLabelValues(string(comment.Sentiment)).Inc()
	return &comment, nil
}

// CommentsByDraft returns all comments on one draft, newest last.
func (s *Service) CommentsByDraft(ctx context.Context, draftID int) ([]domain.Comment, error) {
	if _, err := s.drafts.Get(draftID); err != nil {
		return nil, err
	}
	return s.comments.ListByDraft(ctx, draftID)
}

// CommentsByUser returns everything one citizen has submitted, across drafts.
func (s *Service) CommentsByUser(ctx context.Context, userEmail string) ([]domain.Comment, error) {
	return s.comments.ListByUser(ctx, userEmail)
}

// Report builds the analytics view for one draft from the current comment
// snapshot. Reports are computed on demand and never cached.
func (s *Service) Report(ctx context.Context, draftID int) (*domain.Report, error) {
	if _, err := s.drafts.Get(draftID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	timer := s.clock.Now()
	report := analytics.Aggregate(draftID, comments)
	metrics.ReportDuration.Observe(s.clock.Since(timer).Seconds())
	metrics.ReportsGenerated.Inc()

	return &report, nil
}

// ExportCSV renders a draft's comments as CSV and derives the download
// filename from the draft title.
func (s *Service) ExportCSV(ctx context.Context, draftID int) ([]byte, string, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return nil, "", err
	}

	comments, err := s.comments.ListByDraft(ctx, draftID)
	if err != nil {
		return nil, "", err
	}

	return export.CommentsCSV(comments), export.Filename(draft.Title), nil
}

// AdminStats computes the portal-wide dashboard counters.
func (s *Service) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byDraft := make(map[int]int)
	for _, comment := range comments {
		byDraft[comment.DraftID]++
	}

	return &domain.AdminStats{
		TotalUsers:      totalUsers,
		TotalComments:   len(comments),
		CommentsByDraft: byDraft,
	}, nil
}
