package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/leadboard/internal/tui/state"
)

func TestRenderFromState_IncludesTitleAndMessage(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		title string
	}{
		{state.LevelInfo, "Info"},
		{state.LevelWarning, "Sync"},
		{state.LevelError, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out := RenderFromState(state.Notification{Level: tt.level, Message: "daemon restarted"})
			assert.Contains(t, out, tt.title)
			assert.Contains(t, out, "daemon restarted")
		})
	}
}
