package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bikeshare-explorer/internal/analysis"
	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/common/db"
	"github.com/bikeshare-explorer/internal/common/discord"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/internal/explorer"
	"github.com/bikeshare-explorer/internal/loader"
	"github.com/bikeshare-explorer/internal/loader/parser"
	"github.com/bikeshare-explorer/internal/prompt"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, everything has a default
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("Failed to load .env file: " + err.Error())
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.NewFromConfig(logger.LoggerConfig{
		Level:           logger.ParseLogLevel(cfg.Logging.Level),
		Console:         cfg.Logging.Console,
		File:            true,
		FilePath:        cfg.Logging.FilePath,
		MaxSizeMB:       10,
		MaxBackups:      5,
		MaxAgeDays:      int(cfg.Logging.MaxAge / (24 * time.Hour)),
		Compress:        true,
		TimeFieldFormat: time.RFC3339,
		Notifier:        discord.NewClient(cfg.Logging.DiscordURL),
	})

	log.Info("Bikeshare explorer starting",
		"source", cfg.Data.Source,
		"data_dir", cfg.Data.Dir,
		"page_size", cfg.Data.PageSize,
		"exclude_final_record", cfg.Data.ExcludeFinalRecord,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("Shutdown signal received")
		cancel()
		os.Exit(130)
	}()

	p := parser.New(log)
	var source loader.Source
	switch cfg.Data.Source {
	case config.SourceCSV:
		source = loader.NewCSVSource(cfg.Data.Dir, cfg.Data.Cities, p)
	default:
		if err := cfg.Database.Validate(); err != nil {
			log.Fatal("Invalid database configuration", "error", err)
		}
		database, err := db.New(ctx, cfg.Database.Driver, cfg.Database.ConnectionString(), log)
		if err != nil {
			log.Fatal("Failed to connect to database", "error", err)
		}
		defer database.Close()
		source = loader.NewSQLSource(database.Conn(), cfg.Data.Cities, p)
	}

	engine := analysis.New(analysis.Options{ExcludeFinalRecord: cfg.Data.ExcludeFinalRecord}, log)
	app := explorer.New(
		explorer.Config{PageSize: cfg.Data.PageSize},
		prompt.New(os.Stdin, os.Stdout, log),
		loader.New(source, log),
		engine,
		os.Stdout,
		log,
	)

	if err := app.Run(ctx); err != nil {
		log.Error("Bikeshare explorer stopped with error", "error", err)
		os.Exit(1)
	}

	log.Info("Bikeshare explorer stopped")
}
