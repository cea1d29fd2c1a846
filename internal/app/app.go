package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"syscall"

	"github.com/Onahi7/portfolio-sub000/internal/config"
	"github.com/Onahi7/portfolio-sub000/internal/domain"
	"github.com/Onahi7/portfolio-sub000/internal/gateway"
	"github.com/Onahi7/portfolio-sub000/internal/handler"
	"github.com/Onahi7/portfolio-sub000/internal/middleware"
	"github.com/Onahi7/portfolio-sub000/internal/notification"
	"github.com/Onahi7/portfolio-sub000/internal/repository"
	"github.com/Onahi7/portfolio-sub000/internal/router"
	"github.com/Onahi7/portfolio-sub000/internal/scheduler"
	"github.com/Onahi7/portfolio-sub000/internal/service"
	"github.com/Onahi7/portfolio-sub000/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"trainings",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initRedis connects the listing cache. Without an address listings are
// always read from Postgres.
func (a *App) initRedis() error {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("redis address is empty, listing cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.TTL),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	analyticsRepo := repository.NewAnalyticsRepo(a.db)
	outboxRepo := repository.NewOutboxRepo(a.db)

	var cache ports.ListingCache
	if a.redis != nil {
		cache = repository.NewListingCache(a.redis, a.cfg.Redis.TTL)
	}

	mailer, err := notification.NewEmailSender(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
		Timeout:  a.cfg.SMTP.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}

	platforms, err := a.socialPlatforms()
	if err != nil {
		return fmt.Errorf("init social platforms: %w", err)
	}
	social := notification.NewSocialDispatcher(a.log, platforms...)

	gw := gateway.New(gateway.Config{
		CheckoutURL:   a.cfg.Payment.CheckoutURL,
		PublicBaseURL: a.cfg.Payment.PublicBaseURL,
		CallbackPath:  a.cfg.Payment.CallbackPath,
		Secret:        a.cfg.Payment.Secret,
	})

	lease := a.cfg.Outbox.Lease
	outboxService := service.NewOutboxService(outboxRepo, mailer, social, service.OutboxOptions{
		BatchSize:   a.cfg.Outbox.BatchSize,
		Lease:       lease,
		MaxAttempts: a.cfg.Outbox.MaxAttempts,
		Backoff:     a.cfg.Outbox.Backoff,
		SendTimeout: a.cfg.Outbox.SendTimeout,
	}, a.log)

	submissionService := service.NewSubmissionService(eventRepo, outboxService, gw, service.SubmissionConfig{
		OperatorEmail: a.cfg.Payment.OperatorEmail,
		Currency:      domain.Currency(a.cfg.Payment.Currency),
		Lease:         lease,
	}, a.log)
	paymentService := service.NewPaymentService(paymentRepo, outboxService, gw, lease, a.log)
	moderationService := service.NewModerationService(eventRepo, analyticsRepo, outboxService, social, cache, service.ModerationConfig{
		PublicBaseURL: a.cfg.Payment.PublicBaseURL,
		Lease:         lease,
		ShareTimeout:  a.cfg.Social.Timeout,
	}, a.log)
	listingService := service.NewListingService(eventRepo, cache, a.cfg.Listing.FrontendKeywords, a.log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, eventRepo, a.log)

	a.scheduler = scheduler.New(
		outboxService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(submissionService, paymentService, moderationService, listingService, analyticsService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) socialPlatforms() ([]notification.Platform, error) {
	var platforms []notification.Platform

	if a.cfg.Social.TelegramBotToken != "" {
		tg, err := notification.NewTelegramPlatform(
			a.cfg.Social.TelegramBotToken,
			a.cfg.Social.TelegramChannel,
			"",
			a.cfg.Social.Timeout,
			a.log,
		)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, tg)
	} else {
		a.log.Warn("telegram bot token is empty, telegram sharing disabled")
	}

	names := make([]string, 0, len(a.cfg.Social.Webhooks))
	for name := range a.cfg.Social.Webhooks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		platforms = append(platforms, notification.NewWebhookPlatform(name, a.cfg.Social.Webhooks[name], a.cfg.Social.Timeout))
	}

	return platforms, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
