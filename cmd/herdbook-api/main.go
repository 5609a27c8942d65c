// @title         Herdbook API
// @version       0.1.0
// @description   Animal questionnaire versioning, snapshots, and lineage

package main

import (
	"context"

	"herdbook/internal/platform/config"
	"herdbook/internal/platform/logger"
	"herdbook/internal/platform/metrics"
	phttp "herdbook/internal/platform/net/http"
	"herdbook/internal/platform/store"

	"herdbook/internal/db"
	"herdbook/internal/modkit/httpkit"
	"herdbook/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "herdbook",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// bootstrap the schema; every statement is idempotent
	if apiCfg.MayBool("MIGRATE", true) {
		if err := db.Migrate(context.Background(), st.PG); err != nil {
			l.Panic().Err(err).Msg("schema migration failed")
		}
	}

	// authentication is an upstream collaborator; the gateway in front of
	// this process issues opaque tokens that already are the user id
	auth := httpkit.NewPortFunc(func(token string) (string, error) {
		return token, nil
	})

	reg := metrics.New("herdbook")

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)
	srv.Router().Use(reg.Middleware())

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			Auth:           auth,
			Metrics:        reg,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
