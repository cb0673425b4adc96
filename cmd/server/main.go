package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Sohamlkulk1122/E-consultaion/internal/app"
	"github.com/Sohamlkulk1122/E-consultaion/internal/auth"
	"github.com/Sohamlkulk1122/E-consultaion/internal/catalog"
	"github.com/Sohamlkulk1122/E-consultaion/internal/config"
	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"github.com/Sohamlkulk1122/E-consultaion/internal/logging"
	"github.com/Sohamlkulk1122/E-consultaion/internal/server"
	"github.com/Sohamlkulk1122/E-consultaion/internal/speech"
	"github.com/Sohamlkulk1122/E-consultaion/internal/store"
	"github.com/Sohamlkulk1122/E-consultaion/internal/translate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupStores selects the persistence backend: Postgres when DATABASE_URL is
// set, the JSON file store otherwise. The returned pool is nil in file mode.
func setupStores(cfg *config.Config) (domain.CommentRepository, domain.UserRepository, *pgxpool.Pool) {
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := store.RunMigrations(ctx, pool); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}

		slog.Info("Using Postgres store")
		return store.NewPostgresCommentStore(pool), store.NewPostgresUserStore(pool), pool
	}

	fileStore, err := store.OpenFileStore(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to open file store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	slog.Info("Using file store", "dir", cfg.DataDir)
	return fileStore, fileStore.Users(), nil
}

func setupRedis(cfg *config.Config) *goredis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := translate.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func setupSpeech(cfg *config.Config) *speech.Engine {
	if cfg.TTSURL == "" {
		return speech.NewEngine(nil)
	}
	return speech.NewEngine(speech.NewHTTPSynthesizer(cfg.TTSURL))
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	drafts, err := catalog.Load(cfg.DraftsFile)
	if err != nil {
		slog.Error("Failed to load draft catalog", "error", err)
		os.Exit(1)
	}

	comments, users, pool := setupStores(cfg)
	if pool != nil {
		defer pool.Close()
	}

	redisClient := setupRedis(cfg)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var translateCache translate.Cache
	if redisClient != nil {
		translateCache = translate.NewRedisCache(redisClient)
	}
	translator := translate.NewClient(cfg.TranslateURL, translateCache)

	speechEngine := setupSpeech(cfg)

	authSvc := auth.NewService(users, auth.LogMailer{}, clock, cfg.AdminEmail, cfg.AdminPassword)
	appSvc := app.NewService(comments, users, drafts, clock)

	srv := server.NewServer(cfg, appSvc, authSvc, translator, speechEngine, pool, redisClient)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
