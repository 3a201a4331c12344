package engine

import (
	"testing"
	"time"
)

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Initial time = %v, want %v", now, start)
	}

	mock.Advance(90 * time.Minute)
	if got, want := mock.Now(), start.Add(90*time.Minute); !got.Equal(want) {
		t.Errorf("After Advance = %v, want %v", got, want)
	}

	// Wall clock corrections can move time backwards
	earlier := start.Add(-time.Hour)
	mock.SetTime(earlier)
	if now := mock.Now(); !now.Equal(earlier) {
		t.Errorf("After SetTime = %v, want %v", now, earlier)
	}
}
