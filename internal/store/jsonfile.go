package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/google/uuid"
)

const (
	commentsFile = "comments.json"
	usersFile    = "users.json"
)

// userRecord is the persisted form of a user. The password hash is excluded
// from domain.User's JSON encoding, so the repository layer carries it
// explicitly here.
type userRecord struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"passwordHash"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FileStore persists the comment and user collections as JSON arrays under a
// data directory, one file per collection. Collections are loaded once at
// construction; every append rewrites the owning file via a temp-file
// rename. A missing or malformed file loads as an empty collection.
type FileStore struct {
	mem *MemoryStore
	dir string
}

// OpenFileStore loads (or initializes) the store rooted at dir.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &FileStore{mem: NewMemoryStore(), dir: dir}
	loadCollection(filepath.Join(dir, commentsFile), &s.mem.comments)

	var records []userRecord
	loadCollection(filepath.Join(dir, usersFile), &records)
	for _, r := range records {
		s.mem.users = append(s.mem.users, domain.User{
			ID:            r.ID,
			Email:         r.Email,
			Name:          r.Name,
			PasswordHash:  r.PasswordHash,
			EmailVerified: r.EmailVerified,
			CreatedAt:     r.CreatedAt,
		})
	}

	return s, nil
}

// loadCollection reads a JSON array into dst. Load failures leave dst empty:
// a corrupt or absent file means starting over with no data, not an error
// the user ever sees.
func loadCollection(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read collection, starting empty", "path", path, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("Malformed collection file, starting empty", "path", path, "error", err)
	}
}

func (s *FileStore) writeCollection(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) persistComments() error {
	s.mem.mu.RLock()
	snapshot := make([]domain.Comment, len(s.mem.comments))
	copy(snapshot, s.mem.comments)
	s.mem.mu.RUnlock()
	return s.writeCollection(commentsFile, snapshot)
}

func (s *FileStore) persistUsers() error {
	s.mem.mu.RLock()
	records := make([]userRecord, len(s.mem.users))
	for i, u := range s.mem.users {
		records[i] = userRecord{
			ID:            u.ID,
			Email:         u.Email,
			Name:          u.Name,
			PasswordHash:  u.PasswordHash,
			EmailVerified: u.EmailVerified,
			CreatedAt:     u.CreatedAt,
		}
	}
	s.mem.mu.RUnlock()
	return s.writeCollection(usersFile, records)
}

func (s *FileStore) Add(ctx context.Context, comment domain.Comment) error {
	if err := s.mem.Add(ctx, comment); err != nil {
		return err
	}
	return s.persistComments()
}

func (s *FileStore) ListByDraft(ctx context.Context, draftID int) ([]domain.Comment, error) {
	return s.mem.ListByDraft(ctx, draftID)
}

func (s *FileStore) ListByUser(ctx context.Context, userEmail string) ([]domain.Comment, error) {
	return s.mem.ListByUser(ctx, userEmail)
}

func (s *FileStore) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return s.mem.ListAll(ctx)
}

func (s *FileStore) Count(ctx context.Context) (int, error) {
	return s.mem.Count(ctx)
}

// Users returns the user repository half of the file store.
func (s *FileStore) Users() *FileUserStore {
	return &FileUserStore{store: s}
}

type FileUserStore struct {
	store *FileStore
}

func (u *FileUserStore) Add(ctx context.Context, user domain.User) error {
	if err := u.store.mem.Users().Add(ctx, user); err != nil {
		return err
	}
	return u.store.persistUsers()
}

func (u *FileUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.store.mem.Users().GetByEmail(ctx, email)
}

func (u *FileUserStore) MarkVerified(ctx context.Context, email string) error {
	if err := u.store.mem.Users().MarkVerified(ctx, email); err != nil {
		return err
	}
	return u.store.persistUsers()
}

func (u *FileUserStore) Count(ctx context.Context) (int, error) {
	return u.store.mem.Users().Count(ctx)
}
