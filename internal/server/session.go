package server

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
)

// Session keys
const (
	sessionName       = "econsultation-session"
	sessionKeyUserID  = "user_id"
	sessionKeyEmail   = "email"
	sessionKeyName    = "name"
	sessionKeyIsAdmin = "is_admin"
)

// Context keys set by the auth middleware
const (
	ctxKeyUserID = "userID"
	ctxKeyEmail  = "userEmail"
)

func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return apperrors.UnauthorizedError("login required")
		}

		email, ok := session.Values[sessionKeyEmail].(string)
		if !ok || email == "" {
			return apperrors.UnauthorizedError("login required")
		}
		userID, _ := session.Values[sessionKeyUserID].(string)

		c.Set(ctxKeyUserID, userID)
		c.Set(ctxKeyEmail, email)
		return next(c)
	}
}

func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := s.sessionStore.Get(c.Request(), sessionName)
		if err != nil {
			return apperrors.UnauthorizedError("login required")
		}

		isAdmin, _ := session.Values[sessionKeyIsAdmin].(bool)
		if !isAdmin {
			return apperrors.ForbiddenError("administrator access required")
		}
		return next(c)
	}
}

func (s *Server) saveSession(c echo.Context, values map[string]any) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		// A stale or differently-keyed cookie decodes with an error but
		// still yields a fresh session we can overwrite.
		session, _ = s.sessionStore.New(c.Request(), sessionName)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	return session.Save(c.Request(), c.Response().Writer)
}

func (s *Server) clearSession(c echo.Context) error {
	session, err := s.sessionStore.Get(c.Request(), sessionName)
	if err != nil {
		session, _ = s.sessionStore.New(c.Request(), sessionName)
	}
	session.Options.MaxAge = -1
	return session.Save(c.Request(), c.Response().Writer)
}
