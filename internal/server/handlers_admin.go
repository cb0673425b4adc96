package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleAnalytics(c echo.Context) error {
	id, err := draftIDParam(c)
	if err != nil {
		return err
	}

	report, err := s.app.Report(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return apperrors.NotFoundError("draft not found").WithField("draft_id", id)
	case err != nil:
		return apperrors.InternalError("failed to build report", err)
	}

	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleExport(c echo.Context) error {
	id, err := draftIDParam(c)
	if err != nil {
		return err
	}

	data, filename, err := s.app.ExportCSV(c.Request().Context(), id)
	switch {
	case errors.Is(err, domain.ErrDraftNotFound):
		return apperrors.NotFoundError("draft not found").WithField("draft_id", id)
	case err != nil:
		return apperrors.InternalError("failed to export comments", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}

func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.app.AdminStats(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to compute stats", err)
	}
	return c.JSON(http.StatusOK, stats)
}
