package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"partner-ads/config"
	"partner-ads/database"
	"partner-ads/internal/api/campaigns"
	"partner-ads/internal/api/displays"
	"partner-ads/internal/api/media"
	"partner-ads/internal/api/revenues"
	"partner-ads/internal/api/users"
	"partner-ads/internal/app/gql"
	routes "partner-ads/internal/app/http"
	"partner-ads/internal/app/http/middleware"
	"partner-ads/internal/auth"
	dm "partner-ads/internal/domain/media"
	"partner-ads/internal/infra/filestore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	gin.SetMode(gin.ReleaseMode)
	return zap.NewProduction()
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clock := func() time.Time { return time.Now().In(loc) }

	db, err := database.Open(cfg.DBURL, gormLogger.Warn)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	files, err := filestore.NewOS(cfg.MediaRoot, dm.PathPrefix)
	if err != nil {
		return err
	}
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	schema, err := gql.NewSchema(gql.Services{
		Users:     users.NewService(db, issuer, log),
		Images:    media.NewService(db),
		Displays:  displays.NewService(db),
		Campaigns: campaigns.NewService(db, files, log, campaigns.WithClock(clock)),
		Revenues:  revenues.NewService(db, clock),
	})
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.Cleanup(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deps := routes.Deps{
		Schema:        schema,
		Tokens:        issuer,
		Limiter:       limiter,
		Log:           log,
		MaxUploadSize: cfg.MaxUploadSize,
		CookieTTL:     cfg.JWTTTL,
		SecureCookie:  !cfg.Debug,
	}
	if cfg.Debug {
		deps.Media = files.FileSystem()
		deps.MediaURL = cfg.MediaURL
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server gracefully stopped")
	return nil
}
