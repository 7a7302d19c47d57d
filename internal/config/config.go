package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBotToken     string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	VideosDir            string `envconfig:"VIDEOS_DIR" default:"videos"`
	LogLevel             string `envconfig:"LOG_LEVEL" default:"info"`
	BotDebug             bool   `envconfig:"BOT_DEBUG" default:"false"`
	PollTimeout          int    `envconfig:"POLL_TIMEOUT" default:"60"`
	MaxConcurrentUpdates int    `envconfig:"MAX_CONCURRENT_UPDATES" default:"10"`
}

// Load reads an optional .env file and then fills cfg from the environment.
// An empty envFile means ".env" in the working directory.
func Load(cfg *Config, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process env: %w", err)
	}
	if cfg.TelegramBotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if cfg.MaxConcurrentUpdates < 0 {
		return fmt.Errorf("MAX_CONCURRENT_UPDATES must not be negative, got %d", cfg.MaxConcurrentUpdates)
	}
	return nil
}
