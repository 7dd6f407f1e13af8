package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
)

// ErrNoShapeSource is returned by New when no shape source is given
var ErrNoShapeSource = errors.New("engine: nil shape source")

// Config holds the tunables of one game
type Config struct {
	Width, Height  int
	SpawnX, SpawnY int

	FallInterval    time.Duration
	MinFallInterval time.Duration
	SpeedUpFactor   float64

	// FrameSleep is the pause after every tick in Run
	FrameSleep time.Duration
}

// DefaultConfig returns the classic 10x20 setup
func DefaultConfig() Config {
	return Config{
		Width:           constants.DefaultGridWidth,
		Height:          constants.DefaultGridHeight,
		SpawnX:          constants.SpawnX,
		SpawnY:          constants.SpawnY,
		FallInterval:    constants.InitialFallInterval,
		MinFallInterval: constants.MinFallInterval,
		SpeedUpFactor:   constants.SpeedUpFactor,
		FrameSleep:      constants.FrameSleepInterval,
	}
}

// Engine owns the whole simulation state; it is driven by a single goroutine
type Engine struct {
	cfg    Config
	clock  TimeProvider
	source board.ShapeSource

	grid    *board.Grid
	gravity *GravityClock
	current *board.Piece
	next    board.Shape

	lines  int
	locked int
	state  State
	reason Reason

	observers []Observer
}

// New creates an engine with an empty grid and the first two shapes drawn
func New(cfg Config, source board.ShapeSource, clock TimeProvider) (*Engine, error) {
	if source == nil {
		return nil, ErrNoShapeSource
	}
	grid, err := board.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("create grid: %w", err)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}

	e := &Engine{
		cfg:     cfg,
		clock:   clock,
		source:  source,
		grid:    grid,
		gravity: NewGravityClock(cfg.FallInterval, cfg.MinFallInterval, cfg.SpeedUpFactor, clock.Now()),
	}
	e.Reset()
	return e, nil
}

// AddObserver registers o for lock, clear and game over notifications
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Reset starts a fresh game on the same engine
func (e *Engine) Reset() {
	e.grid.Reset()
	e.gravity.Reset(e.clock.Now())
	e.lines = 0
	e.locked = 0
	e.reason = ReasonNone
	e.state = StateFalling

	e.next = e.source.NextShape()
	e.spawn()
}

// Tick applies one input and advances gravity, in that order:
// rotation, then left (else right), then the fall check
func (e *Engine) Tick(in Input) State {
	if e.state == StateGameOver {
		return e.state
	}

	switch in {
	case InputQuit:
		e.finish(ReasonQuit)
		return e.state
	case InputRotate:
		e.grid.TryRotate(e.current)
	}

	if in == InputLeft {
		e.grid.TryMoveLeft(e.current)
	} else if in == InputRight {
		e.grid.TryMoveRight(e.current)
	}

	now := e.clock.Now()
	if in == InputSoftDrop || e.gravity.Due(now) {
		e.gravity.MarkFall(now)
		if !e.grid.TryFall(e.current) {
			e.lock()
		}
	}

	return e.state
}

// lock merges the landed piece, clears rows and spawns the next piece
func (e *Engine) lock() {
	e.state = StateLocking

	// A piece that never left the spawn row ends the game without being merged
	if e.current.Y == e.cfg.SpawnY {
		e.finish(ReasonToppedOut)
		return
	}

	e.grid.Merge(e.current)
	e.locked++
	for _, o := range e.observers {
		o.OnLock(e.current)
	}

	e.state = StateClearing
	if n := e.grid.ClearFullRows(); n > 0 {
		e.lines += n
		e.gravity.SpeedUp()
		log.Printf("cleared %d row(s), lines=%d interval=%v", n, e.lines, e.gravity.Interval())
		for _, o := range e.observers {
			o.OnClear(n, e.gravity.Interval())
		}
	}

	e.spawn()
}

// spawn promotes the queued shape and draws a new one.
// A spawn onto filled cells tops out immediately.
func (e *Engine) spawn() {
	e.current = board.NewPiece(e.next, e.cfg.SpawnX, e.cfg.SpawnY)
	e.next = e.source.NextShape()

	if !e.grid.Fits(e.current.Shape, e.current.X, e.current.Y) {
		e.finish(ReasonToppedOut)
		return
	}
	e.state = StateFalling
}

// Stop ends the run from outside, e.g. on interrupt
func (e *Engine) Stop(reason Reason) {
	if e.state == StateGameOver {
		return
	}
	e.finish(reason)
}

func (e *Engine) finish(reason Reason) {
	e.state = StateGameOver
	e.reason = reason
	log.Printf("game over: reason=%s lines=%d locked=%d", reason, e.lines, e.locked)

	r := e.Result()
	for _, o := range e.observers {
		o.OnGameOver(r)
	}
}

// Snapshot returns the frame view; the grid is not modified
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cells:        e.grid.Composite(e.current),
		Next:         e.next.Clone(),
		Lines:        e.lines,
		State:        e.state,
		FallInterval: e.gravity.Interval(),
	}
}

// Result reports the current outcome; valid at any tick boundary
func (e *Engine) Result() Result {
	return Result{Lines: e.lines, Locked: e.locked, Reason: e.reason}
}

// State returns the current phase
func (e *Engine) State() State { return e.state }

// Lines returns the cleared line counter
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the current gravity interval
func (e *Engine) FallInterval() time.Duration { return e.gravity.Interval() }

// Grid exposes the board for scenario setup
func (e *Engine) Grid() *board.Grid { return e.grid }

// Current returns the controlled piece
func (e *Engine) Current() *board.Piece { return e.current }

// Next returns a copy of the queued shape
func (e *Engine) Next() board.Shape { return e.next.Clone() }

// Config returns the engine configuration
func (e *Engine) Config() Config { return e.cfg }
