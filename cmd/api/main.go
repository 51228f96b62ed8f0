package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-hours/internal/config"
	dbpkg "github.com/BruksfildServices01/restaurant-hours/internal/db"
	"github.com/BruksfildServices01/restaurant-hours/internal/infra/cache"
	"github.com/BruksfildServices01/restaurant-hours/internal/infra/source"
	"github.com/BruksfildServices01/restaurant-hours/internal/logger"
	"github.com/BruksfildServices01/restaurant-hours/internal/routes"
	"github.com/BruksfildServices01/restaurant-hours/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := timezone.Load(cfg.Timezone)
	if err != nil {
		return err
	}

	deps := routes.Deps{
		Config:   cfg,
		Log:      log,
		Location: loc,
	}

	// ======================================================
	// DATABASE
	// ======================================================
	if cfg.DBUrl != "" {
		db, err := dbpkg.NewDB(cfg.DBUrl, log)
		if err != nil {
			return err
		}
		pool, err := dbpkg.NewPool(ctx, cfg.DBUrl, log)
		if err != nil {
			return err
		}
		defer pool.Close()

		deps.DB = db
		deps.Pool = pool
	} else {
		log.Warn("DATABASE_URL is empty, serving the memory source only")
	}

	// ======================================================
	// CACHE
	// ======================================================
	if cfg.CacheEnabled() {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, queries will fall through", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		deps.Redis = rdb
	}

	// ======================================================
	// RESTAURANT SOURCE
	// ======================================================
	if strings.HasPrefix(cfg.RestaurantsSource, "s3://") {
		deps.Opener = source.NewOpener(source.NewS3Client(source.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		}))
	} else {
		deps.Opener = source.NewOpener(nil)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	app := routes.RegisterRoutes(r, deps)
	if app.Audit != nil {
		defer app.Audit.Close()
	}

	if err := load(ctx, cfg, log, app, deps.DB); err != nil {
		return err
	}

	// ======================================================
	// HTTP
	// ======================================================
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// load fills the memory source, either by importing the configured source
// or, when SYNC_ON_START is off, from what the database already holds.
func load(ctx context.Context, cfg *config.Config, log *zap.Logger, app *routes.App, db *gorm.DB) error {
	if cfg.SyncOnStart || db == nil {
		if _, err := app.Import.Execute(ctx); err != nil {
			return fmt.Errorf("initial import: %w", err)
		}
		return nil
	}

	rs, err := app.Store.ListAll(ctx)
	if err != nil {
		return err
	}
	app.Memory.Replace(rs)

	log.Info("restaurants loaded from database", zap.Int("count", len(rs)))
	return nil
}
