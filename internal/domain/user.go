package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered citizen account. Accounts are append-only: the only
// mutation after creation is flipping EmailVerified once the verification
// link is followed.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

type UserRepository interface {
	Add(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	MarkVerified(ctx context.Context, email string) error
	Count(ctx context.Context) (int, error)
}
