package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"backend-faq/internal/config"
	"backend-faq/internal/faqstore"
	"backend-faq/internal/helper"
	"backend-faq/internal/http/handler"
	"backend-faq/internal/http/router"
	"backend-faq/internal/models"
	"backend-faq/internal/realtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	runtime.GOMAXPROCS(runtime.NumCPU())

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, admin routes will reject every request")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewFAQHub(log.Named("ws"))
	store := faqstore.New(cfg.FAQStorePath,
		faqstore.WithLogger(log.Named("faqstore")),
		faqstore.WithNotifier(hub.Publish))

	created, err := store.Init(models.EmptyCategories())
	if err != nil {
		return fmt.Errorf("initialising faq store: %w", err)
	}
	if created {
		log.Info("created empty faq store", zap.String("path", cfg.FAQStorePath))
	}
	if _, err := store.ReadAll(); err != nil {
		return fmt.Errorf("faq store is not readable: %w", err)
	}

	deps := router.Deps{
		Log:         log.Named("http"),
		Store:       store,
		Status:      handler.DefaultStatusMap(cfg.FAQNotFoundAs404),
		Tokens:      config.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL),
		Hub:         hub,
		CORSOrigins: cfg.CORSOrigins,
	}

	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		deps.Denylist = config.NewTokenDenylist(rdb)
		log.Info("redis connected", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	} else {
		log.Warn("REDIS_ADDR not set, logout will not revoke tokens")
	}

	if cfg.DBDSN != "" {
		db, err := config.InitDB(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		deps.Users = &helper.SQLUserStore{DB: db}
		log.Info("mysql connected, login enabled")
	} else {
		log.Warn("DB_DSN not set, /auth/login is disabled")
	}

	app := router.New(deps)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(ctx)
		return nil
	})
	if cfg.FAQWatchStore {
		w, err := faqstore.NewWatcher(store, log.Named("watcher"), hub.Publish, 0)
		if err != nil {
			return fmt.Errorf("watching faq store: %w", err)
		}
		g.Go(func() error { return w.Run(ctx) })
	}
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", cfg.Addr()))
		return app.Listen(cfg.Addr())
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
