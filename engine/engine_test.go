package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blockfall/board"
)

type recordingObserver struct {
	locks     int
	clears    []int
	intervals []time.Duration
	results   []Result
}

func (o *recordingObserver) OnLock(p *board.Piece) { o.locks++ }

func (o *recordingObserver) OnClear(rows int, interval time.Duration) {
	o.clears = append(o.clears, rows)
	o.intervals = append(o.intervals, interval)
}

func (o *recordingObserver) OnGameOver(r Result) { o.results = append(o.results, r) }

func newTestEngine(t *testing.T, kinds ...board.ShapeKind) (*Engine, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(epoch)
	e, err := New(DefaultConfig(), board.NewSequenceSource(kinds...), clock)
	require.NoError(t, err)
	return e, clock
}

func verticalI() board.Shape {
	return board.Rotate(board.Template(board.KindI))
}

func TestNewEngineInitialState(t *testing.T) {
	e, _ := newTestEngine(t, board.KindT, board.KindO)

	assert.Equal(t, StateFalling, e.State())
	assert.Equal(t, 0, e.Lines())
	assert.Equal(t, 500*time.Millisecond, e.FallInterval())
	assert.True(t, board.Template(board.KindT).Equal(e.Current().Shape))
	assert.Equal(t, 3, e.Current().X)
	assert.Equal(t, 0, e.Current().Y)
	assert.True(t, board.Template(board.KindO).Equal(e.Next()))
}

func TestNewEngineRejectsBadDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := New(cfg, board.NewSequenceSource(board.KindO), nil)
	assert.ErrorIs(t, err, board.ErrInvalidDimensions)
}

func TestNewEngineRequiresSource(t *testing.T) {
	_, err := New(DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ErrNoShapeSource)
}

func TestGravityFallsAfterInterval(t *testing.T) {
	e, clock := newTestEngine(t, board.KindO)

	clock.Advance(500 * time.Millisecond)
	e.Tick(InputNone)
	assert.Equal(t, 0, e.Current().Y, "not due at exactly one interval")

	clock.Advance(time.Millisecond)
	e.Tick(InputNone)
	assert.Equal(t, 1, e.Current().Y)

	e.Tick(InputNone)
	assert.Equal(t, 1, e.Current().Y, "timer restarted by the fall")
}

func TestSoftDropFallsImmediately(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	e.Tick(InputSoftDrop)
	e.Tick(InputSoftDrop)
	assert.Equal(t, 2, e.Current().Y)
}

func TestHorizontalMoves(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)

	e.Tick(InputLeft)
	assert.Equal(t, 2, e.Current().X)
	e.Tick(InputRight)
	e.Tick(InputRight)
	assert.Equal(t, 4, e.Current().X)

	for i := 0; i < 10; i++ {
		e.Tick(InputRight)
	}
	assert.Equal(t, 8, e.Current().X, "stopped by the right wall")
}

func TestRotateInput(t *testing.T) {
	e, _ := newTestEngine(t, board.KindT)
	e.Tick(InputRotate)
	assert.True(t, board.Rotate(board.Template(board.KindT)).Equal(e.Current().Shape))
}

func TestSingleRowClear(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	obs := &recordingObserver{}
	e.AddObserver(obs)
	g := e.Grid()

	// Row 5 full except column 9; rows below full except column 0 to hold the piece up
	for x := 0; x < 9; x++ {
		g.Set(x, 5, true)
	}
	for y := 6; y < 20; y++ {
		for x := 1; x < 10; x++ {
			g.Set(x, y, true)
		}
	}
	below := g.Cells()[6:]

	// Vertical I covering column 9, rows 2..5
	e.Current().Shape = verticalI()
	e.Current().MoveTo(8, 2)

	state := e.Tick(InputSoftDrop)
	require.Equal(t, StateFalling, state)

	assert.Equal(t, 1, e.Lines())
	assert.Equal(t, 475*time.Millisecond, e.FallInterval())
	assert.Equal(t, []int{1}, obs.clears)
	assert.Equal(t, 1, obs.locks)

	cells := g.Cells()
	assert.Equal(t, make([]bool, 10), cells[0], "empty row inserted at the top")
	// The three upper I cells moved down one row
	assert.True(t, g.Filled(9, 3))
	assert.True(t, g.Filled(9, 4))
	assert.True(t, g.Filled(9, 5))
	assert.False(t, g.Filled(9, 2))
	assert.False(t, g.Filled(0, 5))
	assert.Equal(t, below, cells[6:], "rows under the cleared row are unchanged")

	// Next piece promoted at spawn
	assert.Equal(t, 3, e.Current().X)
	assert.Equal(t, 0, e.Current().Y)
}

// stateObserver records the engine phase seen from inside each callback
type stateObserver struct {
	e        *Engine
	onLock   []State
	onClear  []State
	gameOver []State
}

func (o *stateObserver) OnLock(*board.Piece) { o.onLock = append(o.onLock, o.e.State()) }
func (o *stateObserver) OnClear(int, time.Duration) { o.onClear = append(o.onClear, o.e.State()) }
func (o *stateObserver) OnGameOver(Result) { o.gameOver = append(o.gameOver, o.e.State()) }

func TestObserversSeeTransientStates(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	obs := &stateObserver{e: e}
	e.AddObserver(obs)

	g := e.Grid()
	for x := 0; x < 9; x++ {
		g.Set(x, 19, true)
	}
	e.Current().Shape = verticalI()
	// Occupies column 9, rows 16..19: already resting on the floor
	e.Current().MoveTo(8, 16)

	state := e.Tick(InputSoftDrop)

	assert.Equal(t, StateFalling, state, "Expected transient states to be gone after the tick")
	assert.Equal(t, []State{StateLocking}, obs.onLock)
	assert.Equal(t, []State{StateClearing}, obs.onClear)

	e.Tick(InputQuit)
	assert.Equal(t, []State{StateGameOver}, obs.gameOver)
}

func TestMultiRowClearSpeedsUpOnce(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	g := e.Grid()
	for y := 16; y < 20; y++ {
		for x := 0; x < 9; x++ {
			g.Set(x, y, true)
		}
	}
	e.Current().Shape = verticalI()
	e.Current().MoveTo(8, 10)

	for e.Lines() == 0 && e.State() != StateGameOver {
		e.Tick(InputSoftDrop)
	}

	assert.Equal(t, 4, e.Lines())
	assert.Equal(t, 475*time.Millisecond, e.FallInterval(), "one speed step per clear event")
	assert.Equal(t, 0, g.FilledCount())
}

func TestGameOverAtSpawnWithoutMerge(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	obs := &recordingObserver{}
	e.AddObserver(obs)
	e.Grid().Set(3, 2, true)

	state := e.Tick(InputSoftDrop)

	assert.Equal(t, StateGameOver, state)
	assert.Equal(t, 1, e.Grid().FilledCount(), "topped-out piece is not merged")
	assert.Equal(t, 0, obs.locks)
	require.Len(t, obs.results, 1)
	assert.Equal(t, ReasonToppedOut, obs.results[0].Reason)

	// Terminal: further ticks are ignored
	e.Tick(InputSoftDrop)
	e.Tick(InputQuit)
	assert.Equal(t, 1, e.Grid().FilledCount())
	assert.Len(t, obs.results, 1)
	assert.Equal(t, ReasonToppedOut, e.Result().Reason)
}

func TestSpawnOntoFilledCellsTopsOut(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	e.Current().MoveTo(0, 17)
	e.Grid().Set(4, 0, true)

	e.Tick(InputSoftDrop) // y=18
	state := e.Tick(InputSoftDrop)

	assert.Equal(t, StateGameOver, state)
	assert.Equal(t, 1, e.Result().Locked)
	assert.Equal(t, ReasonToppedOut, e.Result().Reason)
}

func TestStackingUntilTopOut(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	for i := 0; i < 1000 && e.State() != StateGameOver; i++ {
		e.Tick(InputSoftDrop)
	}

	require.Equal(t, StateGameOver, e.State())
	assert.Equal(t, Result{Lines: 0, Locked: 9, Reason: ReasonToppedOut}, e.Result())
	assert.Equal(t, 36, e.Grid().FilledCount())
}

func TestQuitInput(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	assert.Equal(t, StateGameOver, e.Tick(InputQuit))
	assert.Equal(t, ReasonQuit, e.Result().Reason)
}

func TestStopIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, board.KindO)
	obs := &recordingObserver{}
	e.AddObserver(obs)

	e.Stop(ReasonInterrupted)
	e.Stop(ReasonQuit)
	assert.Equal(t, ReasonInterrupted, e.Result().Reason)
	assert.Len(t, obs.results, 1)
}

func TestSnapshotOverlaysPiece(t *testing.T) {
	e, _ := newTestEngine(t, board.KindT, board.KindI)
	snap := e.Snapshot()

	assert.True(t, snap.Cells[1][3])
	assert.True(t, snap.Cells[1][5])
	assert.True(t, snap.Cells[2][4])
	assert.Equal(t, 0, e.Grid().FilledCount())
	assert.True(t, board.Template(board.KindI).Equal(snap.Next))
	assert.Equal(t, StateFalling, snap.State)

	snap.Next[0][0] = true
	assert.False(t, e.Next()[0][0], "snapshot owns its copy of the next shape")
}

func TestResetStartsOver(t *testing.T) {
	e, clock := newTestEngine(t, board.KindO)
	e.Grid().Set(0, 19, true)
	e.Tick(InputQuit)

	clock.Advance(time.Minute)
	e.Reset()

	assert.Equal(t, StateFalling, e.State())
	assert.Equal(t, Result{}, e.Result())
	assert.Equal(t, 0, e.Grid().FilledCount())
	assert.Equal(t, 500*time.Millisecond, e.FallInterval())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "soft-drop", InputSoftDrop.String())
	assert.Equal(t, "game-over", StateGameOver.String())
	assert.Equal(t, "interrupted", ReasonInterrupted.String())
	assert.Equal(t, "unknown", Input(99).String())
}
