package terminal

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// Screen adapts a tcell screen to engine.InputSource and engine.Renderer
type Screen struct {
	screen tcell.Screen
	inputs chan engine.Input

	resized  atomic.Bool
	dropped  atomic.Uint64
	finiOnce sync.Once
	done     chan struct{}
}

// New creates a Screen on the process terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		inputs: make(chan engine.Input, constants.InputQueueSize),
		done:   make(chan struct{}),
	}
}

// Init switches the terminal into full-screen mode.
// Keys are not delivered until PollLoop runs.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// Fini restores the terminal; safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// PollLoop forwards mapped keys to Poll until the screen is finalized.
// It blocks; start it on its own goroutine after Init.
func (s *Screen) PollLoop() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			in := KeyToInput(ev)
			if in == engine.InputNone {
				continue
			}
			select {
			case s.inputs <- in:
			case <-s.done:
				return
			default:
				// Engine is behind; drop rather than block the poller
				if n := s.dropped.Add(1); n%100 == 1 {
					log.Printf("input queue full, dropped %d key(s)", n)
				}
			}
		case *tcell.EventResize:
			s.resized.Store(true)
		}
	}
}

// Poll returns the oldest pending input, or InputNone without blocking
func (s *Screen) Poll() (engine.Input, error) {
	select {
	case in := <-s.inputs:
		return in, nil
	default:
		return engine.InputNone, nil
	}
}

var (
	_ engine.InputSource = (*Screen)(nil)
	_ engine.Renderer    = (*Screen)(nil)
)
