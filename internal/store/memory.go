package store

import (
	"context"
	"strings"
	"sync"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
)

// MemoryStore keeps both collections in process memory. It backs tests and
// is embedded by the JSON file store, which adds persistence on top.
type MemoryStore struct {
	mu       sync.RWMutex
	comments []domain.Comment
	users    []domain.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(_ context.Context, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, comment)
	return nil
}

func (s *MemoryStore) ListByDraft(_ context.Context, draftID int) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if c.DraftID == draftID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userEmail string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if strings.EqualFold(c.UserEmail, userEmail) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListAll(_ context.Context) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Comment, len(s.comments))
	copy(out, s.comments)
	return out, nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments), nil
}

// Users returns the user-facing half of the store.
func (s *MemoryStore) Users() *MemoryUserStore {
	return &MemoryUserStore{store: s}
}

// MemoryUserStore implements domain.UserRepository over the shared state.
type MemoryUserStore struct {
	store *MemoryStore
}

func (u *MemoryUserStore) Add(_ context.Context, user domain.User) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for _, existing := range u.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrUserExists
		}
	}
	u.store.users = append(u.store.users, user)
	return nil
}

func (u *MemoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	for _, existing := range u.store.users {
		if strings.EqualFold(existing.Email, email) {
			found := existing
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (u *MemoryUserStore) MarkVerified(_ context.Context, email string) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for i := range u.store.users {
		if strings.EqualFold(u.store.users[i].Email, email) {
			u.store.users[i].EmailVerified = true
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (u *MemoryUserStore) Count(_ context.Context) (int, error) {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return len(u.store.users), nil
}
