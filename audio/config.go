package audio

import "github.com/lixenwraith/blockfall/constants"

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundLock:     0.4,
			SoundClear:    0.8,
			SoundGameOver: 1.0,
		},
	}
}

// clampVolume limits v to [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
