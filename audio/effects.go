package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blockfall/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that ends after duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateLockSound generates a short low click
func CreateLockSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(180, WaveTriangle, constants.LockSoundDuration, constants.LockSoundAttack, constants.LockSoundRelease, rate)
	return newVolume(s, cfg.EffectVolumes[SoundLock]*cfg.MasterVolume)
}

// clearScale is a major arpeggio starting at C5; one note per cleared row
var clearScale = []float64{523.25, 659.25, 783.99, 1046.50}

// CreateClearSound generates a rising arpeggio, longer for more rows
func CreateClearSound(cfg *AudioConfig, rows int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	if rows < 1 {
		rows = 1
	}

	notes := make([]beep.Streamer, 0, rows)
	for i := 0; i < rows; i++ {
		freq := clearScale[i%len(clearScale)] * float64(int(1)<<(i/len(clearScale)))
		notes = append(notes, tone(freq, WaveSquare, constants.ClearSoundNoteDuration,
			constants.ClearSoundAttack, constants.ClearSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[SoundClear]*cfg.MasterVolume*0.5)
}

// CreateGameOverSound generates three falling notes
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(392.00, WaveSine, constants.GameOverSoundNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate),
		tone(311.13, WaveSine, constants.GameOverSoundNoteDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate),
		tone(261.63, WaveSine, 2*constants.GameOverSoundNoteDuration, constants.GameOverSoundAttack, 2*constants.GameOverSoundRelease, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType; rows only affects SoundClear
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, rows int) beep.Streamer {
	switch soundType {
	case SoundLock:
		return CreateLockSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg, rows)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
