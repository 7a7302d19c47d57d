// Package transfer moves a video between Telegram and the local videos directory.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"videonote/internal/telegram"
)

const (
	fileExt         = ".mp4"
	timestampLayout = "20060102T150405"
)

// ErrBadStatus is returned when the file endpoint answers with a non-200 status.
var ErrBadStatus = errors.New("bad status")

// Transfer downloads videos into dir and uploads them back as video notes.
type Transfer struct {
	api    telegram.API
	dir    string
	client *http.Client
	logger zerolog.Logger

	now   func() time.Time
	newID func() string
}

// New creates a Transfer storing files in dir. The directory must exist.
func New(api telegram.API, dir string, logger zerolog.Logger) *Transfer {
	return &Transfer{
		api: api,
		dir: dir,
		// no overall timeout, only connection-level ones
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// LocalPath builds the destination for a video sent by handle.
func (t *Transfer) LocalPath(handle string) string {
	name := fmt.Sprintf("%s-%s-%s%s", handle, t.now().Format(timestampLayout), t.newID(), fileExt)
	return filepath.Join(t.dir, name)
}

// Download resolves fileID and writes the remote bytes to a new local file.
// The file is closed before Download returns.
func (t *Transfer) Download(ctx context.Context, fileID, handle string) (string, error) {
	url, err := t.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: %s, body: %s", ErrBadStatus, resp.Status, string(body))
	}

	path := t.LocalPath(handle)
	if err := writeFile(path, resp.Body); err != nil {
		return "", err
	}

	t.logger.Debug().Str("file_id", fileID).Str("path", path).Msg("Downloaded file")
	return path, nil
}

func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create failed for %s: %w", path, err)
	}

	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("io.Copy failed for %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// SignalUpload shows the "sending video note" indicator in the chat.
// Failures are logged and otherwise ignored.
func (t *Transfer) SignalUpload(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatUploadVideoNote)
	if _, err := t.api.Request(action); err != nil {
		t.logger.Warn().Int64("chat_id", chatID).Err(err).Msg("Failed to send chat action")
	}
}

// SendVideoNote uploads the local file at path as a video note of the given side length.
func (t *Transfer) SendVideoNote(chatID int64, path string, length int) error {
	note := tgbotapi.NewVideoNote(chatID, length, tgbotapi.FilePath(path))
	if _, err := t.api.Send(note); err != nil {
		return fmt.Errorf("send video note %s: %w", path, err)
	}
	return nil
}
