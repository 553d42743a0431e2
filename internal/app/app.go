package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/cache"
	"github.com/stpnv0/EventHub/internal/config"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/stpnv0/EventHub/internal/notification"
	"github.com/stpnv0/EventHub/internal/repository"
	"github.com/stpnv0/EventHub/internal/router"
	"github.com/stpnv0/EventHub/internal/scheduler"
	"github.com/stpnv0/EventHub/internal/service"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

// App owns every long-lived resource of the server process.
type App struct {
	cfg *config.Config
	log logger.Logger

	db    *dbpg.DB
	redis *redis.Client

	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{cfg: cfg, log: log}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"postgres", a.initPostgres},
		{"migrations", a.migrate},
		{"redis", a.initRedis},
		{"components", a.initComponents},
	}
	for _, step := range steps {
		if err = step.fn(ctx); err != nil {
			a.closeStorage()
			return nil, fmt.Errorf("init %s: %w", step.name, err)
		}
	}

	return a, nil
}

func (a *App) initPostgres(ctx context.Context) error {
	pg := a.cfg.Postgres
	db, err := dbpg.New(pg.DSN(), nil, &dbpg.Options{
		MaxOpenConns:    pg.MaxOpenConns,
		MaxIdleConns:    pg.MaxIdleConns,
		ConnMaxLifetime: pg.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	a.db = db

	if err = db.Master.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("host", pg.Host),
		logger.Int("port", pg.Port),
		logger.String("database", pg.Database),
		logger.Duration("conn_max_lifetime", pg.ConnMaxLifetime),
	)
	return nil
}

func (a *App) migrate(ctx context.Context) error {
	if !a.cfg.Postgres.AutoMigrate {
		a.log.Info("auto migrations disabled")
		return nil
	}
	if err := repository.Migrate(ctx, a.db.Master); err != nil {
		return err
	}
	a.log.Info("migrations applied")
	return nil
}

func (a *App) initRedis(ctx context.Context) error {
	if !a.cfg.Redis.Enabled() {
		a.log.Warn("redis address is empty, report cache disabled")
		return nil
	}

	client, err := cache.NewClient(ctx, a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return err
	}
	a.redis = client

	a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("report_ttl", a.cfg.Redis.ReportTTL),
	)
	return nil
}

func (a *App) initComponents(_ context.Context) error {
	var (
		events        = repository.NewEventRepo(a.db)
		registrations = repository.NewRegistrationRepo(a.db)
		forms         = repository.NewFormRepo(a.db)
		submissions   = repository.NewSubmissionRepo(a.db)
		reports       = repository.NewReportRepo(a.db)
		users         = repository.NewUserRepo(a.db)
	)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("notifier: %w", err)
	}

	// Без redis кэш отчётов остаётся nil
	var reportCache ports.ReportCache
	if a.redis != nil {
		reportCache = cache.NewReportCache(a.redis, a.cfg.Redis.ReportTTL)
	}
	validators := service.DefaultValidators()

	eventSvc := service.NewEventService(events, registrations, users, notifier, reportCache, a.log)

	h := handler.NewHandler(
		eventSvc,
		service.NewRegistrationService(registrations, events, users, notifier, reportCache, a.log),
		service.NewFormService(forms, events, validators, a.log),
		service.NewSubmissionService(submissions, forms, events, users, notifier, reportCache, validators, a.log),
		service.NewUserService(users),
		service.NewReportService(reports, reportCache, a.cfg.Reporting.TopN, a.log),
	)

	a.scheduler = scheduler.New(eventSvc, scheduler.Options{
		Interval:       a.cfg.Scheduler.Interval,
		Timeout:        a.cfg.Scheduler.Timeout,
		RefreshOnStart: a.cfg.Scheduler.RefreshOnStart,
	}, a.log)

	engine := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:  middleware.Authenticate(auth.NewVerifier(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer)),
			Admin: middleware.RequireRole(domain.RoleAdmin),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	return nil
}

// Run serves HTTP and runs the status scheduler until SIGINT/SIGTERM or a
// server failure, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.scheduler.Start(schedCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case runErr = <-errCh:
		a.log.Error("http server failed", logger.String("error", runErr.Error()))
	}

	stopScheduler()
	wg.Wait()

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.Info("HTTP server stopped")
	}

	if err := a.closeStorage(); err != nil {
		errs = append(errs, err)
	}

	a.log.Info("app stopped")
	return errors.Join(errs...)
}

// closeStorage закрывает соединения, открытые к этому моменту.
func (a *App) closeStorage() error {
	var errs []error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		a.redis = nil
	}
	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.db = nil
	}
	return errors.Join(errs...)
}
