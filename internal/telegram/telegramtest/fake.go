// Package telegramtest provides an in-memory telegram.API for tests.
package telegramtest

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Fake records everything sent through it.
type Fake struct {
	mu sync.Mutex

	// FileURLs maps file IDs to the URL returned by GetFileDirectURL.
	FileURLs map[string]string
	FileErr  error

	// SendErr, when set, decides the error returned for a Send call.
	SendErr    func(c tgbotapi.Chattable) error
	RequestErr error

	Sent      []tgbotapi.Chattable
	Requested []tgbotapi.Chattable
	Resolved  []string
}

func New() *Fake {
	return &Fake{FileURLs: map[string]string{}}
}

func (f *Fake) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Sent = append(f.Sent, c)
	if f.SendErr != nil {
		if err := f.SendErr(c); err != nil {
			return tgbotapi.Message{}, err
		}
	}
	return tgbotapi.Message{}, nil
}

func (f *Fake) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requested = append(f.Requested, c)
	if f.RequestErr != nil {
		return nil, f.RequestErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *Fake) GetFileDirectURL(fileID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Resolved = append(f.Resolved, fileID)
	if f.FileErr != nil {
		return "", f.FileErr
	}
	url, ok := f.FileURLs[fileID]
	if !ok {
		return "", tgbotapi.Error{Code: 400, Message: "Bad Request: invalid file_id"}
	}
	return url, nil
}

// Texts returns the text of every plain message sent so far.
func (f *Fake) Texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var texts []string
	for _, c := range f.Sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

// VideoNotes returns every video note sent so far.
func (f *Fake) VideoNotes() []tgbotapi.VideoNoteConfig {
	f.mu.Lock()
	defer f.mu.Unlock()

	var notes []tgbotapi.VideoNoteConfig
	for _, c := range f.Sent {
		if note, ok := c.(tgbotapi.VideoNoteConfig); ok {
			notes = append(notes, note)
		}
	}
	return notes
}
