package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		want Command
	}{
		{"/start", Start},
		{"/START", Start},
		{"/Start", Start},
		{"  /start  ", Start},
		{"/start@NoteBot", Start},
		{"/start@notebot", Start},
		{"/start@OtherBot", NoCommand},
		{"/start now", NoCommand},
		{"start", NoCommand},
		{"/help", NoCommand},
		{"/", NoCommand},
		{"", NoCommand},
		{"hello /start", NoCommand},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.text, "NoteBot"))
		})
	}
}

func TestParseCommand_UnknownBotName(t *testing.T) {
	assert.Equal(t, Start, ParseCommand("/start@AnyBot", ""))
}
