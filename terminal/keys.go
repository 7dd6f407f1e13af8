package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/engine"
)

// specialKeys maps non-rune keys to inputs
var specialKeys = map[tcell.Key]engine.Input{
	tcell.KeyLeft:   engine.InputLeft,
	tcell.KeyRight:  engine.InputRight,
	tcell.KeyDown:   engine.InputSoftDrop,
	tcell.KeyUp:     engine.InputRotate,
	tcell.KeyEscape: engine.InputQuit,
	tcell.KeyCtrlC:  engine.InputQuit,
}

// runeKeys maps printable keys, vi-style and the classic space-to-rotate
var runeKeys = map[rune]engine.Input{
	'h': engine.InputLeft,
	'l': engine.InputRight,
	'j': engine.InputSoftDrop,
	'k': engine.InputRotate,
	' ': engine.InputRotate,
	'q': engine.InputQuit,
}

// KeyToInput translates a key event; unmapped keys yield InputNone
func KeyToInput(ev *tcell.EventKey) engine.Input {
	if ev.Key() == tcell.KeyRune {
		if in, ok := runeKeys[ev.Rune()]; ok {
			return in
		}
		return engine.InputNone
	}
	if in, ok := specialKeys[ev.Key()]; ok {
		return in
	}
	return engine.InputNone
}
