// Package main contains the entrypoint for the translation relay bot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"babelbot/internal/bot"
	"babelbot/internal/bot/tasks"
	"babelbot/internal/config"
	"babelbot/internal/database"
	"babelbot/internal/gemini"
	"babelbot/internal/line"
	"babelbot/internal/logger"
	"babelbot/internal/relay"
	"babelbot/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// preference store, translation client, webhook server, scheduler), handles
// graceful shutdown, and returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	var store relay.PreferenceStore
	if cfg.Database.Path != "" {
		db, err := database.NewDB(cfg.Database.Path)
		if err != nil {
			log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
			return 1
		}
		defer database.CloseDB(db)
		store = database.NewStore(db, log)
		log.Info("Using SQLite preference store", "path", cfg.Database.Path)
	} else {
		store = relay.NewMemoryStore()
		log.Info("Using in-memory preference store; preferences are cleared on restart")
	}

	translator, err := gemini.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error("Failed to initialize Gemini client", "error", err)
		return 1
	}

	lineClient := line.NewClient(cfg.Line.ChannelToken, log, line.WithBaseURL(cfg.Line.APIBaseURL))

	service := relay.NewService(relay.Deps{
		Logger:     log,
		Config:     cfg,
		Store:      store,
		Translator: translator,
		Messenger:  lineClient,
		Profiles:   lineClient,
	})

	router := server.NewRouter(log, cfg.Line.ChannelSecret, service)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sched := bot.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tasks.TaskDeps{
		Logger: log,
		Store:  store,
		Config: cfg,
	}))

	app := bot.NewBot(log, cfg, httpServer, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)
	log.Info("Bot run loop finished. Initiating shutdown...")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
