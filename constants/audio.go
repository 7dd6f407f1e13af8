package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Lock Sound Timing
const (
	LockSoundDuration = 40 * time.Millisecond
	LockSoundAttack   = 2 * time.Millisecond
	LockSoundRelease  = 30 * time.Millisecond
)

// Clear Sound Timing (one note per cleared row)
const (
	ClearSoundNoteDuration = 90 * time.Millisecond
	ClearSoundAttack       = 5 * time.Millisecond
	ClearSoundRelease      = 60 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 180 * time.Millisecond
)
