package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick   SoundType = iota // Segment boundary passes the pointer
	SoundCoin                    // Reward credited
	SoundDenied                  // Spin rejected
	soundTypeCount
)

// String returns the sound name used in config and logs
func (s SoundType) String() string {
	switch s {
	case SoundTick:
		return "tick"
	case SoundCoin:
		return "coin"
	case SoundDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundTick:   0.3,
			SoundCoin:   0.6,
			SoundDenied: 0.5,
		},
	}
}

// Player plays sound effects; implementations must not block
type Player interface {
	Play(SoundType)
}

// NopPlayer discards every sound
type NopPlayer struct{}

func (NopPlayer) Play(SoundType) {}
