package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Account lifecycle
	s.echo.POST("/auth/signup", s.handleSignUp)
	s.echo.POST("/auth/login", s.handleLogin)
	s.echo.POST("/auth/logout", s.handleLogout)
	s.echo.GET("/auth/verify", s.handleVerify)
	s.echo.POST("/auth/resend-verification", s.handleResendVerification)
	s.echo.POST("/auth/admin/login", s.handleAdminLogin)

	// Draft catalog (public)
	s.echo.GET("/api/drafts", s.handleListDrafts)
	s.echo.GET("/api/drafts/:id", s.handleGetDraft)

	// Comments (reading is public, writing needs a verified session)
	s.echo.GET("/api/drafts/:id/comments", s.handleListComments)
	s.echo.POST("/api/drafts/:id/comments", s.handleSubmitComment, s.requireAuth)
	s.echo.GET("/api/me/comments", s.handleMyComments, s.requireAuth)

	// Admin dashboard
	s.echo.GET("/api/drafts/:id/analytics", s.handleAnalytics, s.requireAdmin)
	s.echo.GET("/api/drafts/:id/export", s.handleExport, s.requireAdmin)
	s.echo.GET("/api/stats", s.handleStats, s.requireAdmin)

	// Accessibility services
	s.echo.GET("/api/translate/languages", s.handleLanguages)
	s.echo.POST("/api/translate", s.handleTranslate)
	s.echo.POST("/api/speech", s.handleSpeech)
	s.echo.POST("/api/speech/stop", s.handleSpeechStop)
}
