package entrypoint

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/katalog/internal/audit"
	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/database"
	"github.com/mrlokans/katalog/internal/database/books"
	http_controllers "github.com/mrlokans/katalog/internal/http"
	"github.com/mrlokans/katalog/internal/logging"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *zap.Logger) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

// Run opens the catalog and serves the web UI. The store handle is closed
// when Run returns.
func Run(cfg *config.Config, version string) error {
	log, flush, err := logging.Setup(cfg.Log.Level, cfg.Log.Production, nil)
	if err != nil {
		return err
	}
	defer flush()

	if cfg.Log.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("starting katalog", zap.String("version", version))

	db, err := database.NewDatabase(cfg.Database.Path, logging.GormLevel(cfg.Database.LogLevel), log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	var opts []catalog.Option
	if cfg.Audit.Dir != "" {
		opts = append(opts, catalog.WithAuditor(audit.NewAuditor(cfg.Audit.Dir, log)))
		log.Info("deletion audit enabled", zap.String("dir", cfg.Audit.Dir))
	}

	notices := catalog.NewNoticeLog()
	cat := catalog.New(books.NewRepository(db.DB), notices, log, opts...)
	if err := cat.Refresh(); err != nil {
		log.Warn("initial load failed", zap.Error(err))
	}

	sqlDB, err := db.SQLDB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}
	sessionManager, err := http_controllers.NewSessionManager(sqlDB, cfg.Session.Lifetime, cfg.Session.SecureCookies)
	if err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	csrfSecret, err := sessionSecret(cfg.Session.Secret)
	if err != nil {
		return err
	}
	if cfg.Session.Secret == "" {
		log.Info("generated session secret (set SESSION_SECRET to persist)")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:        cat,
		Notices:        notices,
		Database:       db,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Session.SecureCookies,
		ExportDir:      cfg.Export.Dir,
		Version:        version,
		Logger:         log,
	})

	return Serve(router, cfg, log)
}

// sessionSecret decodes a hex secret, falls back to the raw bytes, and
// generates a random one when none is configured.
func sessionSecret(configured string) ([]byte, error) {
	if configured != "" {
		if secret, err := hex.DecodeString(configured); err == nil {
			return secret, nil
		}
		return []byte(configured), nil
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	return secret, nil
}
