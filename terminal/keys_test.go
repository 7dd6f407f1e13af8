package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/blockfall/engine"
)

func TestKeyToInput(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Input
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.InputLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.InputRight},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.InputSoftDrop},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.InputRotate},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.InputRotate},
		{"vi h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), engine.InputLeft},
		{"vi l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), engine.InputRight},
		{"vi j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), engine.InputSoftDrop},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), engine.InputQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.InputQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.InputQuit},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), engine.InputNone},
		{"unmapped key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), engine.InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyToInput(tt.ev))
		})
	}
}
