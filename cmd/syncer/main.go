package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"journal_monitor/internal/config"
	"journal_monitor/internal/notifier"
	"journal_monitor/internal/publisher"
	"journal_monitor/internal/service"
	"journal_monitor/internal/source/crossref"
	"journal_monitor/internal/storage/postgres"
	"journal_monitor/internal/zotero"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	userID := flag.String("user", "", "sync a single user instead of all users")
	batchSize := flag.Int("batch-size", -1, "journals per batch (0 = full follow list, -1 = config default)")
	fullPass := flag.Bool("full", false, "ignore the persisted cursor and start from the top")
	export := flag.Bool("export", false, "mirror followed journals and articles to the remote library after syncing")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	followStore := postgres.NewFollowStore(db)
	articleStore := postgres.NewArticleStore(db)
	userArticleStore := postgres.NewUserArticleStore(db)
	settingsStore := postgres.NewSettingsStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Optional new-article event feed
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	registry := crossref.New(crossref.Config{
		BaseURL:        cfg.Registry.BaseURL,
		ContactEmail:   cfg.Registry.ContactEmail,
		PageSize:       cfg.Registry.PageSize,
		Timeout:        cfg.Registry.Timeout,
		MaxAttempts:    cfg.Registry.Retry.MaxAttempts,
		InitialBackoff: cfg.Registry.Retry.InitialBackoff,
		MaxBackoff:     cfg.Registry.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		registry,
		followStore,
		articleStore,
		userArticleStore,
		settingsStore,
		txManager,
		pub,
		logger,
		cfg.Sync.MaxConcurrent,
	)

	emailNotifier := notifier.New(logger)
	exporter := zotero.NewExporter(zotero.New(zotero.Config{
		BaseURL: cfg.Zotero.BaseURL,
		Timeout: cfg.Zotero.Timeout,
	}, logger), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	opts := service.SyncOptions{
		BatchSize:    cfg.Sync.BatchSize,
		IgnoreCursor: *fullPass,
	}
	if *batchSize >= 0 {
		opts.BatchSize = *batchSize
	}

	users := []string{*userID}
	if *userID == "" {
		users, err = settingsStore.ListUserIDs(ctx)
		if err != nil {
			logger.Error("failed to list users", "error", err)
			os.Exit(1)
		}
		logger.Info("processing all users", "count", len(users))
	}

	runner := &runner{
		sync:     syncService,
		follows:  followStore,
		articles: articleStore,
		settings: settingsStore,
		notifier: emailNotifier,
		exporter: exporter,
		logger:   logger,
	}

	failed := 0
	for _, user := range users {
		if err := runner.runUser(ctx, user, opts, *export); err != nil {
			if ctx.Err() != nil {
				logger.Info("interrupted", "error", ctx.Err())
				os.Exit(1)
			}
			logger.Error("sync failed for user", "user_id", user, "error", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

type runner struct {
	sync     *service.SyncService
	follows  *postgres.FollowStore
	articles *postgres.ArticleStore
	settings *postgres.SettingsStore
	notifier *notifier.EmailNotifier
	exporter *zotero.Exporter
	logger   *slog.Logger
}

func (r *runner) runUser(ctx context.Context, userID string, opts service.SyncOptions, export bool) error {
	newArticles, err := r.sync.SyncUser(ctx, userID, opts)
	if err != nil {
		return err
	}

	settings, err := r.settings.Get(ctx, userID)
	if err != nil {
		return err
	}

	if len(newArticles) > 0 {
		r.notifier.SendDigest(ctx, settings, newArticles)
	}

	if !export {
		return nil
	}
	if !settings.HasZoteroCredentials() {
		r.logger.Debug("export requested but no remote library credentials", "user_id", userID)
		return nil
	}

	journals, err := r.follows.ListFollowed(ctx, userID)
	if err != nil {
		return err
	}
	if len(journals) == 0 {
		return nil
	}

	journalIDs := make([]int64, len(journals))
	for i, j := range journals {
		journalIDs[i] = j.ID
	}

	articles, err := r.articles.ListByJournals(ctx, journalIDs)
	if err != nil {
		return err
	}

	result, err := r.exporter.Sync(ctx, *settings.ZoteroUserID, *settings.ZoteroAPIKey, journals, articles)
	if err != nil {
		return err
	}

	r.logger.Info("remote library export completed",
		"user_id", userID,
		"collections_created", result.CollectionsCreated,
		"items_created", result.ItemsCreated,
	)
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
