package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"videonote/internal/bot"
	"videonote/internal/config"
	"videonote/internal/logger"
	"videonote/internal/telegram"
	"videonote/internal/transfer"
)

func main() {
	cfg := &config.Config{}
	if err := config.Load(cfg, ""); err != nil {
		log.Fatalf("Can't load config: %v", err)
	}

	logr := logger.New(cfg.LogLevel, os.Stdout)

	if err := os.MkdirAll(cfg.VideosDir, 0o755); err != nil {
		logr.Fatal().Err(err).Str("dir", cfg.VideosDir).Msg("Can't create videos directory")
	}

	if err := telegram.SetLogger(logr); err != nil {
		logr.Fatal().Err(err).Msg("Can't set bot api logger")
	}

	api, err := telegram.New(cfg.TelegramBotToken, cfg.BotDebug, logr)
	if err != nil {
		logr.Fatal().Err(err).Msg("Can't start bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handlers := bot.NewHandlers(api, transfer.New(api, cfg.VideosDir, logr), logr)
	dispatcher := bot.NewDispatcher(handlers, api.Self.UserName, cfg.MaxConcurrentUpdates, logr)

	updates := telegram.Updates(api, cfg.PollTimeout)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	logr.Info().Str("videos_dir", cfg.VideosDir).Msg("Bot started")
	dispatcher.Run(ctx, updates)
	logr.Info().Msg("Bot stopped")
}
