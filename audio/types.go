package audio

// SoundType represents the game's sound cues
type SoundType int

const (
	SoundLock     SoundType = iota // Piece merged into the grid
	SoundClear                     // One or more rows removed
	SoundGameOver                  // Run ended
	soundTypeCount
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}
