// Package telegram wraps the Bot API client used by the rest of the bot.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// API is the part of *tgbotapi.BotAPI the handlers and transfer depend on.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

var _ API = (*tgbotapi.BotAPI)(nil)

// New authorizes the bot with token.
func New(token string, debug bool, logger zerolog.Logger) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	bot.Debug = debug

	logger.Info().Str("account", bot.Self.UserName).Msg("Authorized on account")
	return bot, nil
}

// Updates starts long polling and returns the update stream.
func Updates(bot *tgbotapi.BotAPI, timeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	return bot.GetUpdatesChan(u)
}

// botLogger routes the client's own debug output through zerolog.
type botLogger struct {
	logger zerolog.Logger
}

func (l botLogger) Println(v ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprintln(v...))
}

func (l botLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

// SetLogger makes the Bot API client log via logger.
func SetLogger(logger zerolog.Logger) error {
	return tgbotapi.SetLogger(botLogger{logger: logger.With().Str("component", "tgbotapi").Logger()})
}
