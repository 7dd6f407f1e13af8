package engine

import (
	"time"

	"github.com/lixenwraith/blockfall/board"
)

// Input is one discrete player event consumed per tick
type Input uint8

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputSoftDrop
	InputRotate
	InputQuit
)

var inputNames = [...]string{"none", "left", "right", "soft-drop", "rotate", "quit"}

func (i Input) String() string {
	if int(i) < len(inputNames) {
		return inputNames[i]
	}
	return "unknown"
}

// State is the engine phase.
// Locking and Clearing only exist inside a single Tick: observers see
// StateLocking from OnLock and StateClearing from OnClear, while callers
// between ticks only ever see Falling or GameOver.
type State uint8

const (
	StateFalling  State = iota
	StateLocking        // piece merged, OnLock fan-out
	StateClearing       // rows removed, OnClear fan-out
	StateGameOver
)

var stateNames = [...]string{"falling", "locking", "clearing", "game-over"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Reason explains why a run ended
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonToppedOut
	ReasonQuit
	ReasonInterrupted
)

var reasonNames = [...]string{"none", "topped-out", "quit", "interrupted"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Result is the final (or current) outcome reported to the caller
type Result struct {
	Lines  int
	Locked int
	Reason Reason
}

// Snapshot is an immutable view of one frame for renderers
type Snapshot struct {
	// Cells is the grid with the current piece overlaid, indexed [y][x]
	Cells        [][]bool
	Next         board.Shape
	Lines        int
	State        State
	FallInterval time.Duration
}

// InputSource yields at most one pending event without blocking.
// An error is treated as no input for that tick.
type InputSource interface {
	Poll() (Input, error)
}

// Renderer draws a snapshot
type Renderer interface {
	Render(Snapshot) error
}

// Observer receives engine events; callbacks run on the engine goroutine
type Observer interface {
	OnLock(p *board.Piece)
	OnClear(rows int, interval time.Duration)
	OnGameOver(r Result)
}
