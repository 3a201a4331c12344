package wheel

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/engine"
	"github.com/lixenwraith/impcton/storage"
	"github.com/rs/zerolog"
)

// spinRecord is the persisted form of the last spin
type spinRecord struct {
	LastSpinTime int64 `json:"lastSpinTime"` // epoch millis
}

// Gate is the cooldown lock between spins
// The last spin time is persisted under constants.LastSpinStorageKey so a
// restart mid-cooldown still reports the correct remaining time
type Gate struct {
	store    storage.KeyValueStore
	clock    engine.TimeProvider
	cooldown time.Duration
	log      zerolog.Logger

	lastSpin  time.Time
	hasLast   bool
	open      bool
	remaining time.Duration
}

// NewGate creates a gate and loads the persisted record
// A missing, unreadable or malformed record leaves the gate open
func NewGate(store storage.KeyValueStore, clock engine.TimeProvider, cooldown time.Duration, log zerolog.Logger) *Gate {
	if cooldown <= 0 {
		cooldown = constants.SpinCooldown
	}
	g := &Gate{
		store:    store,
		clock:    clock,
		cooldown: cooldown,
		log:      log,
	}
	g.load()
	g.recompute(clock.Now())
	return g
}

// CanSpin reports whether a spin is currently permitted
func (g *Gate) CanSpin() bool {
	return g.open
}

// Remaining returns the wait until the gate reopens, zero when open
func (g *Gate) Remaining() time.Duration {
	return g.remaining
}

// Cooldown returns the configured cooldown duration
func (g *Gate) Cooldown() time.Duration {
	return g.cooldown
}

// LastSpin returns the last recorded spin time, if any
func (g *Gate) LastSpin() (time.Time, bool) {
	return g.lastSpin, g.hasLast
}

// Tick refreshes the countdown, called by the host once per second
// Returns true only on the tick that reopens the gate
func (g *Gate) Tick() bool {
	if g.open {
		return false
	}
	g.recompute(g.clock.Now())
	if g.open {
		g.log.Info().Msg("wheel cooldown expired")
		return true
	}
	return false
}

// Arm closes the gate for a full cooldown starting now and persists the time
// A failed write is logged and dropped; the next start may then allow an early spin
func (g *Gate) Arm() {
	now := g.clock.Now()
	g.lastSpin = now
	g.hasLast = true
	g.open = false
	g.remaining = g.cooldown

	if err := g.persist(now); err != nil {
		g.log.Warn().Err(err).Msg("failed to persist last spin time")
	}
}

// recompute derives open/remaining from the last spin, clamped to [0, cooldown]
func (g *Gate) recompute(now time.Time) {
	if !g.hasLast {
		g.open = true
		g.remaining = 0
		return
	}

	// Clock moved backwards past the spin: re-anchor so the wait never exceeds one cooldown
	if now.Before(g.lastSpin) {
		g.log.Warn().Time("last_spin", g.lastSpin).Time("now", now).Msg("clock moved backwards, re-anchoring cooldown")
		g.lastSpin = now
	}

	remaining := g.cooldown - now.Sub(g.lastSpin)
	switch {
	case remaining <= 0:
		g.open = true
		g.remaining = 0
	default:
		g.open = false
		g.remaining = remaining
	}
}

func (g *Gate) load() {
	if g.store == nil {
		return
	}

	raw, err := g.store.Get(constants.LastSpinStorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			g.log.Warn().Err(err).Msg("failed to read last spin time, treating as first run")
		}
		return
	}

	var rec spinRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.LastSpinTime <= 0 {
		g.log.Warn().Str("raw", raw).Msg("malformed last spin record ignored")
		return
	}

	g.lastSpin = time.UnixMilli(rec.LastSpinTime)
	g.hasLast = true
}

func (g *Gate) persist(t time.Time) error {
	if g.store == nil {
		return nil
	}
	raw, err := json.Marshal(spinRecord{LastSpinTime: t.UnixMilli()})
	if err != nil {
		return errors.Wrap(err, "encode spin record")
	}
	return g.store.Set(constants.LastSpinStorageKey, string(raw))
}
