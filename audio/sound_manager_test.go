package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/impcton/engine"
	"github.com/rs/zerolog"
)

// TestSoundManagerGracefulDegradation verifies calls before Initialize are safe
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil, zerolog.Nop())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundTick)
	sm.Play(SoundCoin)
	sm.Play(SoundDenied)
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("manager should not report initialized")
	}
}

// TestSoundManagerDisabled verifies disabled audio never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil, zerolog.Nop())

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with audio disabled: %v", err)
	}
	if sm.Initialized() {
		t.Error("disabled audio should stay uninitialized")
	}
}

// TestTickThrottle verifies ticks closer than the minimum gap are dropped
func TestTickThrottle(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	sm := NewSoundManager(nil, clock, zerolog.Nop())

	if !sm.admit(SoundTick) {
		t.Fatal("first tick should play")
	}
	clock.Advance(10 * time.Millisecond)
	if sm.admit(SoundTick) {
		t.Error("tick inside the gap should be dropped")
	}
	if !sm.admit(SoundCoin) {
		t.Error("coin is never throttled")
	}
	clock.Advance(40 * time.Millisecond)
	if !sm.admit(SoundTick) {
		t.Error("tick after the gap should play")
	}
}

var _ Player = (*SoundManager)(nil)
var _ Player = NopPlayer{}
