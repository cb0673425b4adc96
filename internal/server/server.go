package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sohamlkulk1122/E-consultaion/internal/app"
	"github.com/Sohamlkulk1122/E-consultaion/internal/auth"
	"github.com/Sohamlkulk1122/E-consultaion/internal/config"
	apperrors "github.com/Sohamlkulk1122/E-consultaion/internal/errors"
	"github.com/gorilla/sessions"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
)

const sessionMaxAgeDays = 7

// Translator is the slice of the translation client the handlers need.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Speaker is the slice of the speech engine the handlers need.
type Speaker interface {
	Speak(ctx context.Context, text, lang string) ([]byte, error)
	Stop()
}

type Server struct {
	echo         *echo.Echo
	config       *config.Config
	app          *app.Service
	auth         *auth.Service
	translator   Translator
	speaker      Speaker
	sessionStore *sessions.CookieStore
	db           *pgxpool.Pool
	redisClient  *goredis.Client
	startTime    time.Time
}

// NewServer wires the HTTP layer. db and redisClient may be nil when the
// deployment runs on the file store without a translation cache; readiness
// then only reports process health.
func NewServer(cfg *config.Config, appSvc *app.Service, authSvc *auth.Service, translator Translator, speaker Speaker, db *pgxpool.Pool, redisClient *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	// Session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * sessionMaxAgeDays,
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          appSvc,
		auth:         authSvc,
		translator:   translator,
		speaker:      speaker,
		sessionStore: sessionStore,
		db:           db,
		redisClient:  redisClient,
		startTime:    time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
