package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"stakepool/internal/clock"
	"stakepool/internal/event"
	"stakepool/internal/jwtauth"
	"stakepool/internal/platform/config"
	"stakepool/internal/platform/httpserver"
	"stakepool/internal/platform/logger"
	"stakepool/internal/platform/metrics"
	platformredis "stakepool/internal/platform/redis"
	"stakepool/internal/staking/handler"
	"stakepool/internal/staking/models"
	"stakepool/internal/staking/pool"
	"stakepool/internal/staking/service"
	"stakepool/internal/staking/statscache"
	"stakepool/internal/token"
	httptransport "stakepool/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal staking packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	treasury := token.NewTreasury(cfg.MaxSupply)
	bank := token.NewBank(treasury)

	periods := models.DefaultPeriods()
	if cfg.Periods != nil {
		periods = models.PeriodTable(cfg.Periods)
	}
	stakingPool := pool.New(pool.Config{
		Owner:    models.Address(cfg.OwnerAddress),
		MinStake: cfg.MinStake,
		Periods:  periods,
		Clock:    clock.System{},
	})

	// Event pipeline: postgres when configured, in-memory otherwise; kafka
	// mirror is optional.
	var store event.Store = event.NewInMemoryStore()
	if cfg.PostgresURL != "" {
		db, err := event.OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		pgStore := event.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Error("failed to ensure event schema", "error", err.Error())
			os.Exit(1)
		}
		store = pgStore
	}

	var sink event.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := event.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err.Error())
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	}

	publisher := event.NewPublisher(cfg.EventBuffer, log)
	worker := event.NewWorker(store, sink, publisher.Events(), log)

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	cache := statscache.New(redisClient, cfg.Redis.StatsTTL, log)

	stakingService := service.New(stakingPool, bank,
		service.WithLogger(log),
		service.WithNotifier(publisher),
		service.WithMetrics(m),
		service.WithStatsCache(cache),
	)

	jwtService := jwtauth.NewJWTService(cfg.JWTSigningKey, "stakepool")
	stakingHandler := handler.New(stakingService, log, m, jwtauth.NewJWTServiceAdapter(jwtService))

	var dev *httptransport.DevHandler
	if cfg.DevMode {
		dev = httptransport.NewDevHandler(jwtService, stakingService, log)
		log.Warn("dev mode enabled: /auth/token and /faucet are open")
	}

	router := httptransport.NewRouter(stakingHandler, dev)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting stakepool", "addr", cfg.Addr, "owner", cfg.OwnerAddress)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err.Error())
		os.Exit(1)
	}
}
