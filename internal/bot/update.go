package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"videonote/internal/video"
)

// Update is an incoming message reduced to what the handlers look at.
type Update struct {
	ID        int
	ChatID    int64
	Handle    string // chat username, may be empty
	FirstName string
	Text      string // message text, or the caption for media messages
	Video     *video.Descriptor
}

// FromTelegram converts a raw update. It reports false for updates that are
// not plain messages (edits, callbacks, channel posts, ...).
func FromTelegram(tu tgbotapi.Update) (*Update, bool) {
	msg := tu.Message
	if msg == nil || msg.Chat == nil {
		return nil, false
	}

	u := &Update{
		ID:        tu.UpdateID,
		ChatID:    msg.Chat.ID,
		Handle:    msg.Chat.UserName,
		FirstName: msg.Chat.FirstName,
		Text:      msg.Text,
	}
	if u.Text == "" {
		u.Text = msg.Caption
	}

	if v := msg.Video; v != nil {
		u.Video = &video.Descriptor{
			FileID:   v.FileID,
			Width:    v.Width,
			Height:   v.Height,
			Duration: v.Duration,
			Size:     int64(v.FileSize),
		}
	}
	return u, true
}
