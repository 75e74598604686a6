package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"story_ingest/internal/config"
	"story_ingest/internal/content"
	"story_ingest/internal/domain"
	"story_ingest/internal/publisher"
	"story_ingest/internal/service"
	"story_ingest/internal/storage/postgres"
	"story_ingest/internal/urls"
	"story_ingest/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	storyURL := flag.String("url", "", "ingest a single url and exit")
	redirectURL := flag.String("redirect", "", "redirect url for -url")
	contentPath := flag.String("file", "", "file holding the fetched content for -url")
	fallbackDate := flag.String("fallback-date", "", "publish date (RFC3339) to use when none can be guessed")
	ignoreRedirect := flag.String("ignore-redirect", "", "stop following redirects onto the medium of this url and exit")
	seedURL := flag.String("seed-url", "", "make this url match the story given by -story-id and exit")
	storyID := flag.Int64("story-id", 0, "story for -seed-url")
	flag.Parse()

	logger := setupLogger("info")

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

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(db, cfg.Database.MigrationsPath, logger); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

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

	stores := service.Stores{
		Stories:   postgres.NewStoryStore(db),
		Media:     postgres.NewMediaStore(db),
		Feeds:     postgres.NewFeedStore(db),
		Tags:      postgres.NewTagStore(db),
		Downloads: postgres.NewDownloadStore(db),
		Redirects: postgres.NewRedirectStore(db),
	}

	storyService := service.NewStoryService(
		stores,
		postgres.NewTransactionManager(db),
		rabbitMQ,
		urls.NewNormalizer(),
		content.NewTitleExtractor(),
		content.NewDateGuesser(),
		logger,
		cfg.Ingest,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *ignoreRedirect != "" {
		if err := storyService.AddIgnoredRedirect(ctx, *ignoreRedirect); err != nil {
			logger.Error("failed to add ignored redirect", "error", err)
			os.Exit(1)
		}
		return
	}

	if *seedURL != "" {
		if *storyID <= 0 {
			logger.Error("-seed-url requires -story-id")
			os.Exit(1)
		}
		if err := storyService.AddSeedURL(ctx, *storyID, *seedURL); err != nil {
			logger.Error("failed to add seed url", "error", err)
			os.Exit(1)
		}
		return
	}

	if *storyURL != "" {
		req, err := oneOffRequest(*storyURL, *redirectURL, *contentPath, *fallbackDate)
		if err != nil {
			logger.Error("invalid ingest request", "error", err)
			os.Exit(1)
		}

		result, err := storyService.Ingest(ctx, req)
		if err != nil {
			logger.Error("ingest failed", "url", req.URL, "error", err)
			os.Exit(1)
		}
		logger.Info("ingested",
			"stories_id", result.Story.ID,
			"url", result.Story.URL,
			"created", result.Created,
		)
		return
	}

	consumer, err := worker.NewConsumer(worker.ConsumerConfig{
		URL:       cfg.RabbitMQ.URL,
		QueueName: cfg.RabbitMQ.IngestQueue,
		Prefetch:  cfg.RabbitMQ.Prefetch,
	}, logger)
	if err != nil {
		logger.Error("failed to start consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	logger.Info("starting story ingester",
		"queue", cfg.RabbitMQ.IngestQueue,
		"concurrency", cfg.Worker.Concurrency,
	)

	pool := worker.NewPool(storyService, cfg.Worker, logger)
	if _, err := pool.Run(ctx, consumer.Deliveries()); err != nil && err != context.Canceled {
		logger.Error("worker error", "error", err)
		os.Exit(1)
	}
}

func oneOffRequest(storyURL, redirectURL, contentPath, fallbackDate string) (domain.IngestRequest, error) {
	req := domain.IngestRequest{URL: storyURL, RedirectURL: redirectURL}

	if contentPath != "" {
		data, err := os.ReadFile(contentPath)
		if err != nil {
			return req, err
		}
		req.Content = string(data)
	}

	if fallbackDate != "" {
		t, err := time.Parse(time.RFC3339, fallbackDate)
		if err != nil {
			return req, err
		}
		req.FallbackDate = &t
	}

	return req, nil
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
