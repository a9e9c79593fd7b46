// The seeder loads the fixture dataset into MySQL: landlords first (the
// property FK needs them), then properties and reviews concurrently with a
// bounded number of workers.
package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"rentwatch/internal/adapters/observability"
	"rentwatch/internal/shared"
	mysqlrepo "rentwatch/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	for _, l := range shared.FixtureLandlords() {
		if err := repo.SaveLandlord(ctx, l); err != nil {
			log.Fatal().Str("id", l.ID).Err(err).Msg("seed landlord failed")
		}
		log.Info().Str("id", l.ID).Msg("landlord ok")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, p := range shared.FixtureProperties() {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.SaveProperty(ctx, p); err != nil {
				log.Warn().Str("id", p.ID).Err(err).Msg("seed property failed")
				return
			}
			log.Info().Str("id", p.ID).Msg("property ok")
		}()
	}
	wg.Wait()

	for _, r := range shared.FixtureReviews() {
		r := r

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.SaveReview(ctx, r); err != nil {
				log.Warn().Str("id", r.ID).Err(err).Msg("seed review failed")
				return
			}
			log.Info().Str("id", r.ID).Msg("review ok")
		}()
	}
	wg.Wait()

	log.Info().Msg("seeding completed")
}
