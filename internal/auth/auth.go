// Package auth implements account signup, password login and the mandatory
// email-verification step that gates first authenticated use. Session
// cookies live in the server layer; this package only decides who may have
// one. The analytics pipeline never calls into this package.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTokenTTL = 24 * time.Hour
	minPasswordLength    = 8
)

// Mailer delivers verification links. The default implementation only logs
// them; wiring a real SMTP sender is a deployment concern.
type Mailer interface {
	SendVerification(ctx context.Context, email, token string) error
}

// LogMailer writes the verification link to the structured log instead of
// sending mail.
type LogMailer struct{}

func (LogMailer) SendVerification(_ context.Context, email, token string) error {
	slog.Info("Verification mail (log delivery)", "email", email, "token", token)
	return nil
}

type pendingVerification struct {
	email     string
	expiresAt time.Time
}

// Service owns the account lifecycle.
type Service struct {
	users  domain.UserRepository
	mailer Mailer
	clock  clockwork.Clock

	adminEmail    string
	adminPassword string

	mu     sync.Mutex
	tokens map[string]pendingVerification
}

func NewService(users domain.UserRepository, mailer Mailer, clock clockwork.Clock, adminEmail, adminPassword string) *Service {
	return &Service{
		users:         users,
		mailer:        mailer,
		clock:         clock,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		tokens:        make(map[string]pendingVerification),
	}
}

// SignUp creates an unverified account and mails a verification link.
// The account cannot log in until the link is followed.
func (s *Service) SignUp(ctx context.Context, email, name, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if name = strings.TrimSpace(name); name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.users.Add(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueVerification(ctx, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by email and password. Unverified accounts are
// rejected with domain.ErrEmailNotVerified; unknown accounts and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	return user, nil
}

// Verify consumes a verification token and marks the account verified.
func (s *Service) Verify(ctx context.Context, token string) error {
	s.mu.Lock()
	pending, ok := s.tokens[token]
	if ok {
		delete(s.tokens, token)
	}
	s.mu.Unlock()

	if !ok || s.clock.Now().After(pending.expiresAt) {
		return domain.ErrVerificationNotFound
	}
	return s.users.MarkVerified(ctx, pending.email)
}

// ResendVerification issues a fresh token for an unverified account.
// Resending for an already-verified account is a no-op.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return nil
	}
	return s.issueVerification(ctx, user.Email)
}

// AdminLogin checks the configured administrator credentials.
func (s *Service) AdminLogin(email, password string) bool {
	if s.adminEmail == "" || s.adminPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	return emailOK && passwordOK
}

func (s *Service) issueVerification(ctx context.Context, email string) error {
	token, err := generateToken()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tokens[token] = pendingVerification{
		email:     email,
		expiresAt: s.clock.Now().Add(verificationTokenTTL),
	}
	s.mu.Unlock()

	if err := s.mailer.SendVerification(ctx, email, token); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
