package audio

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/engine"
)

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")

// SoundManager plays engine events through a single mixer on the speaker.
// Every method is a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager; a nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.MasterVolume = clampVolume(cfg.MasterVolume)
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue; rows only matters for SoundClear
func (sm *SoundManager) Play(st SoundType, rows int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg, rows)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st]++
}

// Drain blocks until queued sounds finish or timeout elapses
func (sm *SoundManager) Drain(timeout time.Duration) {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		speaker.Lock()
		pending := sm.mixer.Len()
		speaker.Unlock()
		if pending == 0 {
			return
		}
		time.Sleep(constants.FrameSleepInterval)
	}
}

// Played returns how many times st was queued
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

// OnLock implements engine.Observer
func (sm *SoundManager) OnLock(_ *board.Piece) {
	sm.Play(SoundLock, 0)
}

// OnClear implements engine.Observer
func (sm *SoundManager) OnClear(rows int, _ time.Duration) {
	sm.Play(SoundClear, rows)
}

// OnGameOver implements engine.Observer
func (sm *SoundManager) OnGameOver(r engine.Result) {
	if r.Reason == engine.ReasonToppedOut {
		sm.Play(SoundGameOver, 0)
	}
	log.Printf("audio: lock=%d clear=%d gameover=%d", sm.Played(SoundLock), sm.Played(SoundClear), sm.Played(SoundGameOver))
}

var _ engine.Observer = (*SoundManager)(nil)
