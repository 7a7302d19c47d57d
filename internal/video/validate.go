// Package video checks uploaded videos against the video note constraints.
package video

const (
	MaxSide        = 640
	MaxDurationSec = 60
	MaxSizeMB      = 8

	bytesPerMB = 1024 * 1024
)

// Descriptor is the metadata Telegram reports for an uploaded video.
type Descriptor struct {
	FileID   string
	Width    int
	Height   int
	Duration int // seconds
	Size     int64
}

// Reason is why a video was rejected. The zero value means accepted.
type Reason int

const (
	Accepted Reason = iota
	ResolutionTooHigh
	NotSquare
	TooLong
	TooHeavy
)

var reasonMessages = map[Reason]string{
	ResolutionTooHigh: "видео не должно быть больше 360p:(",
	NotSquare:         "видео должно быть квадратным:(",
	TooLong:           "видео должно быть короче 60 секунд:(",
	TooHeavy:          "видео не должно быть тяжелее 8 мегабайт:(",
}

// Message is the reply text sent for a rejection, empty for Accepted.
func (r Reason) Message() string {
	return reasonMessages[r]
}

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case ResolutionTooHigh:
		return "resolution too high"
	case NotSquare:
		return "not square"
	case TooLong:
		return "too long"
	case TooHeavy:
		return "too heavy"
	default:
		return "unknown"
	}
}

// Result of running the rules over a Descriptor.
type Result struct {
	Reason Reason
}

func (r Result) Accepted() bool {
	return r.Reason == Accepted
}

type rule struct {
	reason Reason
	fails  func(d Descriptor) bool
}

// rules are evaluated in order, the first failing one wins.
var rules = []rule{
	{ResolutionTooHigh, func(d Descriptor) bool { return d.Width > MaxSide || d.Height > MaxSide }},
	{NotSquare, func(d Descriptor) bool { return d.Width != d.Height }},
	{TooLong, func(d Descriptor) bool { return d.Duration > MaxDurationSec }},
	// whole megabytes only: 8 MiB plus a few bytes still passes
	{TooHeavy, func(d Descriptor) bool { return d.Size/bytesPerMB > MaxSizeMB }},
}

// Validate applies the video note rules to d.
func Validate(d Descriptor) Result {
	for _, r := range rules {
		if r.fails(d) {
			return Result{Reason: r.reason}
		}
	}
	return Result{Reason: Accepted}
}

// Rules is the text listing every constraint, shown to users on /start.
const Rules = `ПРАВИЛА:
видео не должно быть больше 360p
видео должно быть квадратным
видео должно быть короче 60 секунд
видео не должно быть тяжелее 8 мегабайт`
