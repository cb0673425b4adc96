package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool against databaseURL and verifies connectivity.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// RunMigrations applies the idempotent schema migrations.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email))`,
		`CREATE TABLE IF NOT EXISTS comments (
			id UUID PRIMARY KEY,
			draft_id INTEGER NOT NULL,
			user_id TEXT NOT NULL,
			user_email TEXT NOT NULL,
			content TEXT NOT NULL,
			sentiment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_draft_id ON comments(draft_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_user_email ON comments(LOWER(user_email))`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

const commentColumns = `id, draft_id, user_id, user_email, content, sentiment, created_at`

// PostgresCommentStore implements domain.CommentRepository backed by PostgreSQL.
type PostgresCommentStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentStore(pool *pgxpool.Pool) *PostgresCommentStore {
	return &PostgresCommentStore{pool: pool}
}

func (s *PostgresCommentStore) Add(ctx context.Context, comment domain.Comment) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO comments (id, draft_id, user_id, user_email, content, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, comment.ID, comment.DraftID, comment.UserID, comment.UserEmail, comment.Content, string(comment.Sentiment), comment.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (s *PostgresCommentStore) queryComments(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var sentiment string
		if err := rows.Scan(&c.ID, &c.DraftID, &c.UserID, &c.UserEmail, &c.Content, &sentiment, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Sentiment = domain.Sentiment(sentiment)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *PostgresCommentStore) ListByDraft(ctx context.Context, draftID int) ([]domain.Comment, error) {
	return s.queryComments(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE draft_id = $1 ORDER BY created_at
	`, draftID)
}

func (s *PostgresCommentStore) ListByUser(ctx context.Context, userEmail string) ([]domain.Comment, error) {
	return s.queryComments(ctx, `
		SELECT `+commentColumns+` FROM comments WHERE LOWER(user_email) = LOWER($1) ORDER BY created_at
	`, userEmail)
}

func (s *PostgresCommentStore) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return s.queryComments(ctx, `SELECT `+commentColumns+` FROM comments ORDER BY created_at`)
}

func (s *PostgresCommentStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// PostgresUserStore implements domain.UserRepository backed by PostgreSQL.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

func (s *PostgresUserStore) Add(ctx context.Context, user domain.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, email_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`, user.ID, user.Email, user.Name, user.PasswordHash, user.EmailVerified, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	// ON CONFLICT DO NOTHING swallows the duplicate; detect it explicitly so
	// signup can report the conflict.
	existing, err := s.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing.ID != user.ID {
		return domain.ErrUserExists
	}
	return nil
}

func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, email_verified, created_at
		FROM users WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.EmailVerified, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *PostgresUserStore) MarkVerified(ctx context.Context, email string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET email_verified = TRUE WHERE LOWER(email) = LOWER($1)
	`, email)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *PostgresUserStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
