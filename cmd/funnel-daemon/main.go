package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lumina-labs/lead-funnel/internal/adapter"
	"github.com/lumina-labs/lead-funnel/internal/config"
	"github.com/lumina-labs/lead-funnel/internal/domain"
	"github.com/lumina-labs/lead-funnel/internal/funnel"
	"github.com/lumina-labs/lead-funnel/internal/logger"
	"github.com/lumina-labs/lead-funnel/internal/providers/dexscreener"
	"github.com/lumina-labs/lead-funnel/internal/providers/indexcheck"
	"github.com/lumina-labs/lead-funnel/internal/providers/telegram"
	"github.com/lumina-labs/lead-funnel/internal/ratelimit"
	"github.com/lumina-labs/lead-funnel/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

const httpTimeout = 30 * time.Second

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadDaemonConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Service:   "funnel-daemon",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting funnel daemon")

	// Connect to database, retrying while it comes up
	var db *gorm.DB
	connect := func() error {
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(connect, policy); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, store.ConnectionPoolSettings{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(httpTimeout)
	jsonAdapter := adapter.NewJSON()

	// Initialize store and schema
	dataStore := store.NewPGStore(db, clock)
	if err := dataStore.Migrate(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate schema", zap.Error(err))
	}
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Error(err)
		}
	}()

	// Initialize providers
	discovery := dexscreener.NewClient(httpClient, cfg.Discovery.APIURL, jsonAdapter, clock)
	messenger := telegram.NewClient(httpClient, cfg.Telegram.GatewayURL, cfg.Telegram.APIKey, jsonAdapter)
	indexChecker := indexcheck.NewClient(httpClient, cfg.IndexCheck.APIURL, cfg.IndexCheck.APIKey, cfg.IndexCheck.SearchEngineID, jsonAdapter)

	// Initialize rate limiter
	limiter := ratelimit.NewLimiter(clock, ratelimit.DefaultWindow, map[domain.ActionClass]int{
		domain.ActionJoin:    cfg.Outreach.JoinsPerHour,
		domain.ActionMessage: cfg.Outreach.MessagesPerHour,
	})

	// Wire the pipeline
	executor := funnel.NewStageExecutor(funnel.ExecutorConfig{
		MessageTemplate: cfg.Telegram.MessageTemplate,
		TemplateName:    cfg.Telegram.TemplateName,
	}, dataStore, messenger, limiter)

	controller := funnel.NewCycleController(funnel.CycleConfig{
		Filters: domain.DiscoveryFilters{
			Chains:       cfg.Discovery.Chains,
			MinVolume24h: cfg.Discovery.MinVolume24h,
			MinLiquidity: cfg.Discovery.MinLiquidity,
			MaxAgeHours:  cfg.Discovery.MaxAgeHours,
			Limit:        cfg.Discovery.Limit,
		},
		BatchLimit:           cfg.Outreach.BatchLimit,
		MaxJoinAttempts:      cfg.Outreach.MaxJoinAttempts,
		RequireUnindexed:     cfg.Outreach.RequireUnindexed,
		IndexCheckLimit:      cfg.Outreach.IndexCheckLimit,
		CooldownAfterJoin:    cfg.Outreach.CooldownAfterJoin,
		CooldownAfterMessage: cfg.Outreach.CooldownAfterMessage,
		ShortPause:           cfg.Outreach.ShortPause,
	}, dataStore, discovery, indexChecker, executor, clock)

	daemon := funnel.NewDaemon(funnel.DaemonConfig{
		CheckInterval:        cfg.Schedule.CheckInterval,
		ActiveHoursStart:     cfg.Schedule.ActiveHoursStart,
		ActiveHoursEnd:       cfg.Schedule.ActiveHoursEnd,
		MaxErrorsBeforePause: cfg.Schedule.MaxErrorsBeforePause,
		ErrorPause:           cfg.Schedule.ErrorPause,
		ShortPause:           cfg.Schedule.ShortPause,
	}, controller, clock)

	// Start the daemon in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := daemon.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the daemon
	cancel()

	// Give the daemon time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := daemon.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.Info("Funnel daemon stopped")
}
