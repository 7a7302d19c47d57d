package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"videonote/internal/telegram"
	"videonote/internal/video"
)

const (
	fallbackText       = "не понял тебя. пришли видео!"
	downloadFailedText = "не удалось скачать видео:("
	uploadFailedText   = "не удалось отправить кружок:("
)

// MediaTransfer moves an accepted video from Telegram to disk and back.
type MediaTransfer interface {
	Download(ctx context.Context, fileID, handle string) (string, error)
	SignalUpload(chatID int64)
	SendVideoNote(chatID int64, path string, length int) error
}

// Handlers reacts to classified updates.
type Handlers struct {
	api      telegram.API
	transfer MediaTransfer
	logger   zerolog.Logger
}

func NewHandlers(api telegram.API, transfer MediaTransfer, logger zerolog.Logger) *Handlers {
	return &Handlers{
		api:      api,
		transfer: transfer,
		logger:   logger,
	}
}

// Command runs the handler for cmd.
func (h *Handlers) Command(ctx context.Context, cmd Command, u *Update) error {
	switch cmd {
	case Start:
		return h.Start(ctx, u)
	default:
		return fmt.Errorf("unsupported command %d", cmd)
	}
}

// Start greets the user and lists the video rules.
func (h *Handlers) Start(_ context.Context, u *Update) error {
	if err := h.reply(u.ChatID, greeting(u.FirstName)); err != nil {
		return err
	}

	h.logger.Info().Str("username", u.Handle).Str("command", Start.String()).Msg("Command handled")
	return nil
}

func greeting(firstName string) string {
	if firstName == "" {
		return "привет, пришли видео\n" + video.Rules
	}
	return fmt.Sprintf("привет, %s, пришли видео\n%s", firstName, video.Rules)
}

// Video validates the uploaded video and, if it fits, sends it back as a video note.
func (h *Handlers) Video(ctx context.Context, u *Update) error {
	if u.Video == nil {
		return fmt.Errorf("update %d has no video", u.ID)
	}

	result := video.Validate(*u.Video)
	if !result.Accepted() {
		h.logger.Info().
			Str("username", u.Handle).
			Int64("chat_id", u.ChatID).
			Stringer("reason", result.Reason).
			Msg("Video rejected")
		return h.reply(u.ChatID, result.Reason.Message())
	}

	path, err := h.transfer.Download(ctx, u.Video.FileID, u.Handle)
	if err != nil {
		h.replyBestEffort(u.ChatID, downloadFailedText)
		return fmt.Errorf("download video: %w", err)
	}

	h.transfer.SignalUpload(u.ChatID)

	if err := h.transfer.SendVideoNote(u.ChatID, path, u.Video.Width); err != nil {
		h.replyBestEffort(u.ChatID, uploadFailedText)
		return fmt.Errorf("upload video note: %w", err)
	}

	h.logger.Info().
		Str("username", u.Handle).
		Int64("chat_id", u.ChatID).
		Str("path", path).
		Msg("Video note sent")
	return nil
}

// Fallback answers anything that is neither a command nor a video.
func (h *Handlers) Fallback(_ context.Context, u *Update) error {
	if err := h.reply(u.ChatID, fallbackText); err != nil {
		return err
	}

	h.logger.Info().
		Str("username", u.Handle).
		Int64("chat_id", u.ChatID).
		Str("text", u.Text).
		Msg("Unrecognized message")
	return nil
}

func (h *Handlers) reply(chatID int64, text string) error {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}
	return nil
}

func (h *Handlers) replyBestEffort(chatID int64, text string) {
	if err := h.reply(chatID, text); err != nil {
		h.logger.Warn().Int64("chat_id", chatID).Err(err).Msg("Failed to notify user")
	}
}
