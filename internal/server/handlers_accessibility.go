package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
	"github.com/Sohamlkulk1122/E-consultaion/internal/translate"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, translate.SupportedLanguages())
}

func (s *Server) handleTranslate(c echo.Context) error {
	var req struct {
		Text   string `json:"text"`
		Target string `json:"target"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Target == "" {
		return apperrors.ValidationError("target language is required")
	}

	translated, err := s.translator.Translate(c.Request().Context(), req.Text, req.Target)
	if err != nil {
		return apperrors.UnavailableError("translation service unavailable", err).
			WithField("target", req.Target)
	}

	return c.JSON(http.StatusOK, map[string]string{"translatedText": translated})
}

func (s *Server) handleSpeech(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
		Lang string `json:"lang"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Text == "" {
		return apperrors.ValidationError("text is required")
	}

	// Playback outlives the handler's deadline semantics only through the
	// engine: a later /api/speech or /api/speech/stop cancels this context.
	audio, err := s.speaker.Speak(c.Request().Context(), req.Text, req.Lang)
	switch {
	case errors.Is(err, domain.ErrSpeechUnsupported):
		return echo.NewHTTPError(http.StatusNotImplemented, "speech synthesis not supported")
	case errors.Is(err, context.Canceled):
		return c.NoContent(http.StatusNoContent)
	case err != nil:
		return apperrors.UnavailableError("speech service unavailable", err)
	}

	return c.Blob(http.StatusOK, "audio/mpeg", audio)
}

func (s *Server) handleSpeechStop(c echo.Context) error {
	s.speaker.Stop()
	return c.JSON(http.StatusOK, map[string]string{"status": "stopped"})
}
