// Package bootstrap wires configuration, storage and handlers into a
// runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"resume-builder/internal/exports"
	"resume-builder/internal/imports"
	"resume-builder/internal/sessions"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/templates"
	"resume-builder/internal/wizard"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine

	DB      *sql.DB
	Redis   *redis.Client
	Store   sessions.Store
	Archive object.ObjectStore

	WizardService  *wizard.Service
	ExportsService *exports.Service

	WizardHandler    *wizard.Handler
	TemplatesHandler *templates.Handler
	ExportsHandler   *exports.Handler
	ImportsHandler   *imports.Handler
}

// Build prepares all dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.SessionStore) == "" {
		cfg.SessionStore = "memory"
	}
	ctx := context.Background()

	app := &App{Config: cfg}

	if err := buildSnapshotStore(ctx, app); err != nil {
		return nil, err
	}

	archive, err := buildArchive(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.Archive = archive

	app.WizardService = wizard.NewService(app.Store, cfg.SaveDebounce)
	app.ExportsService = exports.NewService(exports.NewChromedpRenderer(cfg.ChromePath), archive)

	app.WizardHandler = wizard.NewHandler(app.WizardService)
	app.TemplatesHandler = templates.NewHandler(app.WizardService)
	app.ExportsHandler = exports.NewHandler(app.ExportsService, app.WizardService)
	app.ImportsHandler = imports.NewHandler()

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		WizardHandler:    app.WizardHandler,
		TemplatesHandler: app.TemplatesHandler,
		ExportsHandler:   app.ExportsHandler,
		ImportsHandler:   app.ImportsHandler,
	})

	return app, nil
}

// Close flushes pending snapshot writes and releases held connections.
func (a *App) Close() {
	if a.WizardService != nil {
		a.WizardService.FlushAll()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}

func buildSnapshotStore(ctx context.Context, app *App) error {
	cfg := app.Config
	switch cfg.SessionStore {
	case "postgres":
		sqlDB, err := buildDB(ctx, cfg)
		if err != nil {
			return err
		}
		if sqlDB == nil {
			app.Store = sessions.NewMemoryStore()
			return nil
		}
		app.DB = sqlDB
		app.Store = &sessions.PGStore{DB: sqlDB}
		return nil
	case "redis":
		client, err := buildRedis(ctx, cfg)
		if err != nil {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: redis connect failed; using in-memory snapshots: %v", err)
				app.Store = sessions.NewMemoryStore()
				return nil
			}
			return err
		}
		app.Redis = client
		app.Store = sessions.NewRedisStore(client, cfg.SessionTTL)
		return nil
	default:
		app.Store = sessions.NewMemoryStore()
		return nil
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory snapshots")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory snapshots: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func buildArchive(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "none":
		return nil, nil
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
