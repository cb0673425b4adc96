package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
	"github.com/labstack/echo/v4"
)

func draftIDParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperrors.ValidationError("draft id must be an integer")
	}
	return id, nil
}

func (s *Server) handleListDrafts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.app.Drafts())
}

func (s *Server) handleGetDraft(c echo.Context) error {
	id, err := draftIDParam(c)
	if err != nil {
		return err
	}

	draft, err := s.app.Draft(id)
	if err != nil {
		return apperrors.NotFoundError("draft not found").WithField("draft_id", id)
	}
	return c.JSON(http.StatusOK, draft)
}

func (s *Server) handleListComments(c echo.Context) error {
	id, err := draftIDParam(c)
	if err != nil {
		return err
	}

	comments, err := s.app.CommentsByDraft(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return apperrors.NotFoundError("draft not found").WithField("draft_id", id)
	case err != nil:
		return apperrors.InternalError("failed to list comments", err)
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

func (s *Server) handleSubmitComment(c echo.Context) error {
	id, err := draftIDParam(c)
	if err != nil {
		return err
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	userID, _ := c.Get(ctxKeyUserID).(string)
	email, _ := c.Get(ctxKeyEmail).(string)

	comment, err := s.app.SubmitComment(c.Request().Context(), id, userID, email, req.Content)
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return apperrors.NotFoundError("draft not found").WithField("draft_id", id)
	case errors.Is(err, domain.ErrEmptyComment):
		return apperrors.ValidationError("comment content is required")
	case errors.Is(err, domain.ErrCommentTooLong):
		return apperrors.ValidationError("comment content too long")
	case err != nil:
		return apperrors.InternalError("failed to store comment", err)
	}

	return c.JSON(http.StatusCreated, comment)
}

func (s *Server) handleMyComments(c echo.Context) error {
	email, _ := c.Get(ctxKeyEmail).(string)

	comments, err := s.app.CommentsByUser(c.Request().Context(), email)
	if err != nil {
		return apperrors.InternalError("failed to list comments", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}
