package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"dealerhub/internal/adapters/dealer"
	server "dealerhub/internal/adapters/http_server"
	"dealerhub/internal/adapters/observability"
	redisad "dealerhub/internal/adapters/redis"
	"dealerhub/internal/adapters/sentiment"
	"dealerhub/internal/app"
	"dealerhub/internal/shared"
	mysqlrepo "dealerhub/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.New(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	cancel()

	// deps
	sessions := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
	dealerCl := dealer.New(cfg.DealerBase, cfg.DownstreamTimeout, cfg.DealerRPS)
	sentimentCl := sentiment.New(cfg.SentimentBase, cfg.DownstreamTimeout)

	gw := app.NewGatewayService(dealerCl, sentimentCl, repo, shared.CatalogFixture(), cfg.SentimentWorkers, cfg.DealersRequireAuth)
	auth := app.NewAuthService(repo, sessions)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{GW: gw, Auth: auth, SessionTTL: cfg.SessionTTL})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("dealer_base", cfg.DealerBase).
		Str("sentiment_base", cfg.SentimentBase).
		Bool("dealers_require_auth", cfg.DealersRequireAuth).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
