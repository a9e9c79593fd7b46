package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "rentwatch/internal/adapters/http_server"
	"rentwatch/internal/adapters/observability"
	redisad "rentwatch/internal/adapters/redis"
	"rentwatch/internal/adapters/session"
	"rentwatch/internal/app"
	"rentwatch/internal/domain"
	"rentwatch/internal/risk"
	"rentwatch/internal/shared"
	"rentwatch/internal/storage/memory"
	mysqlrepo "rentwatch/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	repo := openStore(cfg)

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	c := app.NewCommandService(repo, cache, risk.New())
	sessions := session.NewStore(cache, cfg.SessionTTL)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:        q,
		C:        c,
		Sessions: sessions,
		Writes:   server.NewWriteLimiter(cfg.WriteRPS, cfg.WriteBurst),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.StoreDriver).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// openStore picks the backing collection provider. The memory driver starts
// pre-seeded with the fixture dataset so the API is browsable out of the box.
func openStore(cfg shared.Config) domain.PropertyRepository {
	switch cfg.StoreDriver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		return mysqlrepo.New(db)
	case "memory":
		store := memory.New()
		ctx := context.Background()
		for _, l := range shared.FixtureLandlords() {
			if err := store.SaveLandlord(ctx, l); err != nil {
				log.Fatal().Err(err).Msg("seed landlord failed")
			}
		}
		for _, p := range shared.FixtureProperties() {
			if err := store.SaveProperty(ctx, p); err != nil {
				log.Fatal().Err(err).Msg("seed property failed")
			}
		}
		for _, r := range shared.FixtureReviews() {
			if err := store.SaveReview(ctx, r); err != nil {
				log.Fatal().Err(err).Msg("seed review failed")
			}
		}
		return store
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown STORE_DRIVER")
		return nil
	}
}
