package server

import (
	"errors"
	"net/http"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
	"github.com/labstack/echo/v4"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.auth.SignUp(c.Request().Context(), req.Email, req.Name, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return apperrors.ConflictError("an account with this email already exists")
	case err != nil:
		return apperrors.ValidationError(err.Error())
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"user":    user,
		"message": "verification mail sent",
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	user, err := s.auth.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrEmailNotVerified):
		return apperrors.ForbiddenError("email address not verified")
	case err != nil:
		return apperrors.UnauthorizedError("invalid email or password")
	}

	if err := s.saveSession(c, map[string]any{
		sessionKeyUserID:  user.ID.String(),
		sessionKeyEmail:   user.Email,
		sessionKeyName:    user.Name,
		sessionKeyIsAdmin: false,
	}); err != nil {
		return apperrors.InternalError("failed to save session", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleLogout(c echo.Context) error {
	if err := s.clearSession(c); err != nil {
		return apperrors.InternalError("failed to clear session", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleVerify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return apperrors.ValidationError("missing token parameter")
	}

	if err := s.auth.Verify(c.Request().Context(), token); err != nil {
		return apperrors.NotFoundError("verification token is invalid or expired")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "verified"})
}

func (s *Server) handleResendVerification(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	err := s.auth.ResendVerification(c.Request().Context(), req.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.NotFoundError("no account with this email")
	case err != nil:
		return apperrors.InternalError("failed to resend verification", err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "sent"})
}

func (s *Server) handleAdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if !s.auth.AdminLogin(req.Email, req.Password) {
		return apperrors.UnauthorizedError("invalid administrator credentials")
	}

	if err := s.saveSession(c, map[string]any{
		sessionKeyUserID:  "",
		sessionKeyEmail:   req.Email,
		sessionKeyName:    "Administrator",
		sessionKeyIsAdmin: true,
	}); err != nil {
		return apperrors.InternalError("failed to save session", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
