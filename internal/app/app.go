package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StudioDesk/internal/bus"
	"github.com/stpnv0/StudioDesk/internal/config"
	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/draft"
	"github.com/stpnv0/StudioDesk/internal/handler"
	"github.com/stpnv0/StudioDesk/internal/ledger"
	"github.com/stpnv0/StudioDesk/internal/middleware"
	"github.com/stpnv0/StudioDesk/internal/mq"
	"github.com/stpnv0/StudioDesk/internal/notification"
	"github.com/stpnv0/StudioDesk/internal/obs"
	"github.com/stpnv0/StudioDesk/internal/remote"
	"github.com/stpnv0/StudioDesk/internal/repository"
	"github.com/stpnv0/StudioDesk/internal/router"
	"github.com/stpnv0/StudioDesk/internal/scheduler"
	"github.com/stpnv0/StudioDesk/internal/service"
	"github.com/stpnv0/StudioDesk/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "StudioDesk"
	migrationsDir = "migrations"
	reportBacklog = 100
)

type stores struct {
	events   ports.EventStore
	invoices ports.InvoiceStore
	team     ports.TeamStore
}

type App struct {
	cfg            *config.Config
	log            logger.Logger
	db             *dbpg.DB
	redis          *redis.Client
	publisher      *mq.Publisher
	stopForward    func()
	alerts         *notification.Async
	shutdownTracer func(context.Context) error
	httpServer     *http.Server
	scheduler      *scheduler.Scheduler
	digest         *scheduler.Digest
	collections    []scheduler.Refresher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.shutdownTracer, err = obs.InitTracer(context.Background(), appName, cfg.Gin.Mode, cfg.Tracing.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	st, err := app.initStores()
	if err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStores() (stores, error) {
	if a.cfg.Store.Mode == config.StoreRemote {
		client := remote.NewClient(a.cfg.Store.RemoteURL, a.cfg.Store.RemoteToken, a.cfg.Store.RemoteTimeout)
		if err := client.Ping(context.Background()); err != nil {
			a.log.Warn("remote store is not reachable yet",
				logger.String("url", a.cfg.Store.RemoteURL),
				logger.String("error", err.Error()),
			)
		}
		a.log.Info("using remote store", logger.String("url", a.cfg.Store.RemoteURL))

		return stores{
			events:   remote.NewStore(client, "/api/events", domain.Event.Key, domain.ErrEventNotFound),
			invoices: remote.NewStore(client, "/api/invoices", domain.Invoice.Key, domain.ErrInvoiceNotFound),
			team:     remote.NewStore(client, "/api/team", domain.TeamLedger.Key, domain.ErrLedgerNotFound),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return stores{}, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return stores{}, fmt.Errorf("init db: %w", err)
	}

	return stores{
		events:   repository.NewEventRepo(a.db),
		invoices: repository.NewInvoiceRepo(a.db),
		team:     repository.NewTeamRepo(a.db),
	}, nil
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

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initDrafts() (draft.Cache, error) {
	if a.cfg.Drafts.Backend != "redis" {
		return draft.NewMemoryCache(a.cfg.Drafts.TTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.redis = client
	a.log.Info("draft cache connected to redis", logger.String("addr", a.cfg.Redis.Addr))
	return draft.NewRedisCache(client, a.cfg.Drafts.TTL), nil
}

func (a *App) initBus() (*bus.Local, error) {
	b := bus.NewLocal(a.log)
	if a.cfg.RabbitMQ.URL == "" {
		return b, nil
	}

	pub, err := mq.NewPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
	if err != nil {
		return nil, fmt.Errorf("init rabbitmq: %w", err)
	}
	a.publisher = pub
	a.stopForward = bus.Forward(b, pub, a.log)

	a.log.Info("forwarding events to rabbitmq", logger.String("exchange", a.cfg.RabbitMQ.Exchange))
	return b, nil
}

func (a *App) initReporters() (notification.Fanout, *notification.Recorder, error) {
	tg, err := notification.NewTelegramReporter(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("init telegram: %w", err)
	}
	sms := notification.NewSMSReporter(a.cfg.Twilio.AccountSID, a.cfg.Twilio.AuthToken, a.cfg.Twilio.From, a.cfg.Twilio.To, a.log)

	external := notification.Fanout{notification.NewLogReporter(a.log), tg, sms}
	return external, notification.NewRecorder(reportBacklog), nil
}

func (a *App) initServices(st stores) error {
	drafts, err := a.initDrafts()
	if err != nil {
		return err
	}
	events, err := a.initBus()
	if err != nil {
		return err
	}
	external, recorder, err := a.initReporters()
	if err != nil {
		return err
	}

	// Failed mutations go to the UI right away and to the external channels
	// in the background.
	a.alerts = notification.NewAsync(external, reportBacklog, a.log)
	reporter := notification.Fanout{recorder, a.alerts}
	opts := []service.Option{
		service.WithPublisher(events),
		service.WithTimeout(a.cfg.Store.MutationTimeout),
	}
	l := ledger.New(ledger.Policy(a.cfg.Ledger.Overpayment))

	eventService := service.NewEventService(st.events, reporter, a.log, opts...)
	invoiceService := service.NewInvoiceService(st.invoices, l, reporter, a.log, opts...)
	teamService := service.NewTeamService(st.team, l, reporter, a.log, opts...)

	a.collections = []scheduler.Refresher{eventService, invoiceService, teamService}
	a.scheduler = scheduler.New(a.collections, a.cfg.Scheduler.Interval, a.log)

	if a.cfg.Scheduler.DigestCron != "" {
		a.digest, err = scheduler.NewDigest(a.cfg.Scheduler.DigestCron, invoiceService, teamService, external, a.log)
		if err != nil {
			return err
		}
	}

	h := handler.NewHandler(eventService, invoiceService, teamService, drafts, recorder, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	if a.cfg.Auth.JWTSecret == "" {
		a.log.Warn("auth.jwt_secret is empty, API is unauthenticated")
	}

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// loadCollections fills every collection before the API starts serving.
func (a *App) loadCollections(ctx context.Context) {
	for _, c := range a.collections {
		if err := c.Refresh(ctx); err != nil {
			a.log.LogAttrs(ctx, logger.WarnLevel, "initial load failed, will retry on schedule",
				logger.String("collection", c.Name()),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.loadCollections(ctx)

	go a.scheduler.Start(ctx)
	if a.digest != nil {
		go a.digest.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("store", a.cfg.Store.Mode),
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

	if a.alerts != nil {
		if err := a.alerts.Close(shutdownCtx); err != nil {
			a.log.Warn("flush reports", logger.String("error", err.Error()))
		}
	}
	if a.stopForward != nil {
		a.stopForward()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close rabbitmq", logger.String("error", err.Error()))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if err := a.shutdownTracer(shutdownCtx); err != nil {
		a.log.Warn("flush traces", logger.String("error", err.Error()))
	}

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
