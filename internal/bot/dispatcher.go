package bot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Route is the handler an update is sent to.
type Route int

const (
	RouteFallback Route = iota
	RouteCommand
	RouteVideo
)

func (r Route) String() string {
	switch r {
	case RouteCommand:
		return "command"
	case RouteVideo:
		return "video"
	default:
		return "fallback"
	}
}

// Handler is the set of reactions the Dispatcher chooses from.
type Handler interface {
	Command(ctx context.Context, cmd Command, u *Update) error
	Video(ctx context.Context, u *Update) error
	Fallback(ctx context.Context, u *Update) error
}

// Dispatcher routes each update to exactly one handler.
type Dispatcher struct {
	handler Handler
	botName string
	limit   int
	logger  zerolog.Logger
}

// NewDispatcher creates a Dispatcher. botName is the bot's username, used to
// ignore commands addressed to other bots. limit caps concurrently processed
// updates, 0 means no cap.
func NewDispatcher(handler Handler, botName string, limit int, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		botName: botName,
		limit:   limit,
		logger:  logger,
	}
}

// Classify picks the route for u: a command first, then a video, else fallback.
func (d *Dispatcher) Classify(u *Update) (Route, Command) {
	if cmd := ParseCommand(u.Text, d.botName); cmd != NoCommand {
		return RouteCommand, cmd
	}
	if u.Video != nil {
		return RouteVideo, NoCommand
	}
	return RouteFallback, NoCommand
}

// Dispatch runs the one handler u is routed to.
func (d *Dispatcher) Dispatch(ctx context.Context, u *Update) error {
	route, cmd := d.Classify(u)
	switch route {
	case RouteCommand:
		return d.handler.Command(ctx, cmd, u)
	case RouteVideo:
		return d.handler.Video(ctx, u)
	default:
		return d.handler.Fallback(ctx, u)
	}
}

// Run handles updates until ctx is cancelled or the channel is closed.
// Every update is processed in its own goroutine. Run returns after the
// in-flight ones finish.
func (d *Dispatcher) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var sem chan struct{}
	if d.limit > 0 {
		sem = make(chan struct{}, d.limit)
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("Dispatcher stopped")
			return
		case tu, ok := <-updates:
			if !ok {
				d.logger.Info().Msg("Updates channel closed")
				return
			}
			if ctx.Err() != nil {
				d.logger.Info().Msg("Dispatcher stopped")
				return
			}

			u, ok := FromTelegram(tu)
			if !ok {
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()

				if sem != nil {
					select {
					case sem <- struct{}{}:
						defer func() { <-sem }()
					case <-ctx.Done():
						return
					}
				}

				d.handle(ctx, u)
			}()
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, u *Update) {
	log := d.logger.With().
		Int("update_id", u.ID).
		Int64("chat_id", u.ChatID).
		Str("username", u.Handle).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Err(fmt.Errorf("panic: %v", r)).Msg("Update handler panicked")
		}
	}()

	if err := d.Dispatch(ctx, u); err != nil {
		log.Error().Err(err).Msg("Failed to handle update")
	}
}
