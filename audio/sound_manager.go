package audio

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/engine"
	"github.com/rs/zerolog"
)

// SoundManager plays effects through the system speaker
// Every method is safe before Initialize or after a failed Initialize
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	clock       engine.TimeProvider
	log         zerolog.Logger
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
}

// NewSoundManager creates a sound manager; a nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, clock engine.TimeProvider, log zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &SoundManager{
		cfg:   cfg,
		clock: clock,
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
// Disabled audio is not an error; a failing device is returned for the caller to log
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues soundType on the mixer
// Ticks closer than MinTickGap are dropped so a fast spin does not drone
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if !sm.admit(soundType) {
		return
	}

	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// admit applies the tick throttle, caller holds mu
func (sm *SoundManager) admit(soundType SoundType) bool {
	if soundType != SoundTick {
		return true
	}
	now := sm.clock.Now()
	if !sm.lastTick.IsZero() && now.Sub(sm.lastTick) < constants.MinTickGap {
		return false
	}
	sm.lastTick = now
	return true
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}
