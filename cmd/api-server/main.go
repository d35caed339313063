package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gauravbalpande/final-winner/internal/account"
	accountrepo "github.com/gauravbalpande/final-winner/internal/account/repo"
	"github.com/gauravbalpande/final-winner/internal/api"
	"github.com/gauravbalpande/final-winner/internal/auth"
	"github.com/gauravbalpande/final-winner/internal/betting"
	betproducer "github.com/gauravbalpande/final-winner/internal/betting/producer"
	betrepo "github.com/gauravbalpande/final-winner/internal/betting/repo"
	walletcache "github.com/gauravbalpande/final-winner/internal/wallet/cache"
	walletrepo "github.com/gauravbalpande/final-winner/internal/wallet/repo"

	"github.com/gauravbalpande/final-winner/internal/shared/cache"
	"github.com/gauravbalpande/final-winner/internal/shared/config"
	"github.com/gauravbalpande/final-winner/internal/shared/db"
	"github.com/gauravbalpande/final-winner/internal/shared/kafka"
	"github.com/gauravbalpande/final-winner/internal/shared/logger"
	"github.com/gauravbalpande/final-winner/internal/shared/metrics"
	"github.com/gauravbalpande/final-winner/internal/wallet"
)

const balanceCacheTTL = 30 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting", zap.String("app", cfg.AppName), zap.String("env", cfg.Env))

	// Postgres
	pg, err := db.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	if err := db.EnsureSchema(context.Background(), pg); err != nil {
		log.Fatal("schema", zap.Error(err))
	}

	// Redis
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Kafka writer (topic bet_settled)
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSettled)
	defer writer.Close()

	tokens, err := auth.NewTokens(cfg.SecretKey, cfg.Algorithm, cfg.TokenExpiry)
	if err != nil {
		log.Fatal("tokens", zap.Error(err))
	}

	// Services
	wallets := wallet.NewService(log, walletrepo.NewPostgres(pg), walletcache.New(rdb, balanceCacheTTL))
	accounts := account.NewService(log, accountrepo.NewPostgres(pg), tokens)
	bets := betting.NewService(log,
		betrepo.NewPostgres(pg),
		betproducer.NewKafkaPublisher(writer, cfg.TopicBetSettled),
		wallets,
	)

	// Public API
	srv := api.NewServer(log, tokens, accounts, wallets, bets, cfg.AllowedOrigins)
	apiSrv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Metrics and health sidecar
	metricsSrv := metrics.StartServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	go func() {
		log.Info("api listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("api srv", zap.Error(err))
		}
	}()

	waitForShutdown(apiSrv, metricsSrv, log)
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains the servers.
func waitForShutdown(apiSrv, metricsSrv *http.Server, log *zap.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-c
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := apiSrv.Shutdown(ctx); err != nil {
		log.Error("api shutdown", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(ctx); err != nil {
		log.Error("metrics shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
