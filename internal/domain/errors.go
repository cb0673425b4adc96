package domain

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrVerificationNotFound   = errors.New("verification token not found")
	ErrDraftNotFound          = errors.New("draft not found")
	ErrEmptyComment           = errors.New("comment content is empty")
	ErrCommentTooLong         = errors.New("comment content too long")
	ErrTranslationUnavailable = errors.New("translation service unavailable")
	ErrSpeechUnsupported      = errors.New("speech synthesis not supported")
)
