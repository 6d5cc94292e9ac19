package main

import (
	"context"
	"net/http"
	"time"

	"github.com/meteroid-oss/meteroid/internal/cache"
	"github.com/meteroid-oss/meteroid/internal/config"
	"github.com/meteroid-oss/meteroid/internal/external"
	"github.com/meteroid-oss/meteroid/internal/logger"
	"github.com/meteroid-oss/meteroid/internal/migrations"
	"github.com/meteroid-oss/meteroid/internal/postgres"
	pubsubRouter "github.com/meteroid-oss/meteroid/internal/pubsub/router"
	"github.com/meteroid-oss/meteroid/internal/repository"
	"go.uber.org/fx"
)

func init() {
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			postgres.NewDB,
			cache.NewInMemoryCache,
			pubsubRouter.NewRouter,
		),
		repository.Module,
		external.Module,
		fx.Invoke(
			runMigrations,
			registerServer,
			startRouter,
		),
	)
	app.Run()
}

// runMigrations applies pending migrations on boot; this mirrors the
// teacher's dedicated migrate binary but keeps local/dev startup to a
// single command.
func runMigrations(cfg *config.Configuration, log *logger.Logger, db *postgres.DB) error {
	if cfg.Deployment.Mode != "migrate-on-boot" {
		return nil
	}
	log.Info("running database migrations")
	return migrations.Run(db.DB.DB)
}

func registerServer(lc fx.Lifecycle, cfg *config.Configuration, log *logger.Logger, db *postgres.DB) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: mux,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting http server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("http server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}

func startRouter(lc fx.Lifecycle, router *pubsubRouter.Router, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting message router")
			go func() {
				if err := router.Run(); err != nil {
					log.Errorw("message router failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping message router")
			return router.Close()
		},
	})
}
