package bot

import "strings"

// Command is a bot command recognized in message text.
type Command int

const (
	NoCommand Command = iota
	Start
)

func (c Command) String() string {
	switch c {
	case Start:
		return "/start"
	default:
		return ""
	}
}

var commands = map[string]Command{
	"start": Start,
}

// ParseCommand recognizes "/start" and "/start@botName" with no arguments.
// The keyword is matched case-insensitively. A mention of another bot is not
// a command for this one.
func ParseCommand(text, botName string) Command {
	fields := strings.Fields(text)
	if len(fields) != 1 || !strings.HasPrefix(fields[0], "/") {
		return NoCommand
	}

	keyword, mention, hasMention := strings.Cut(fields[0][1:], "@")
	if hasMention && botName != "" && !strings.EqualFold(mention, botName) {
		return NoCommand
	}

	return commands[strings.ToLower(keyword)]
}
