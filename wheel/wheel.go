package wheel

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/engine"
	"github.com/rs/zerolog"
)

var (
	// ErrSpinning rejects a spin request while another spin is animating
	ErrSpinning = errors.New("wheel: spin already in progress")
	// ErrCooldown rejects a spin request while the cooldown gate is closed
	ErrCooldown = errors.New("wheel: cooldown active")
	// ErrClosed rejects a spin request after teardown
	ErrClosed = errors.New("wheel: closed")
)

// Crediter receives the reward, the wheel never owns the balance
type Crediter interface {
	Credit(n int)
}

// Renderer draws the wheel at a rotation in degrees
type Renderer interface {
	RenderWheel(rotation float64, segments []Segment)
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(rotation float64, segments []Segment)

func (f RendererFunc) RenderWheel(rotation float64, segments []Segment) {
	f(rotation, segments)
}

// SpinSession is the state of one animation, discarded when it ends
type SpinSession struct {
	ID            string
	Start         time.Time
	TotalRotation float64
	Elapsed       time.Duration

	frame     engine.FrameID
	cancelled bool
}

// Cancelled reports whether the session was cancelled before completion
func (s *SpinSession) Cancelled() bool {
	return s.cancelled
}

// SpinResult describes a completed spin
type SpinResult struct {
	SessionID     string
	Index         int
	Segment       Segment
	TotalRotation float64
	FinishedAt    time.Time
}

// Options configures a Wheel
// Gate, Balance, Frames and Clock are required; Random defaults to a
// time-seeded source, Renderer and OnResult are optional
type Options struct {
	Segments []Segment
	Duration time.Duration

	Gate     *Gate
	Balance  Crediter
	Frames   engine.FrameClock
	Clock    engine.TimeProvider
	Random   engine.Random
	Renderer Renderer
	OnResult func(SpinResult)
	Logger   zerolog.Logger
}

// Wheel drives the spin animation and settles the reward
type Wheel struct {
	segments []Segment
	duration time.Duration

	gate     *Gate
	balance  Crediter
	frames   engine.FrameClock
	clock    engine.TimeProvider
	rng      engine.Random
	renderer Renderer
	onResult func(SpinResult)
	log      zerolog.Logger

	session  *SpinSession
	rotation float64
	closed   bool
}

// New validates options and creates a wheel at rest
func New(opts Options) (*Wheel, error) {
	segs := opts.Segments
	if segs == nil {
		segs = DefaultSegments()
	}
	if err := ValidateSegments(segs); err != nil {
		return nil, err
	}
	switch {
	case opts.Gate == nil:
		return nil, errors.New("wheel: cooldown gate required")
	case opts.Balance == nil:
		return nil, errors.New("wheel: balance required")
	case opts.Frames == nil:
		return nil, errors.New("wheel: frame clock required")
	case opts.Clock == nil:
		return nil, errors.New("wheel: time provider required")
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = constants.SpinDuration
	}
	rng := opts.Random
	if rng == nil {
		rng = engine.NewRandom(uint64(time.Now().UnixNano()))
	}

	own := make([]Segment, len(segs))
	copy(own, segs)

	return &Wheel{
		segments: own,
		duration: duration,
		gate:     opts.Gate,
		balance:  opts.Balance,
		frames:   opts.Frames,
		clock:    opts.Clock,
		rng:      rng,
		renderer: opts.Renderer,
		onResult: opts.OnResult,
		log:      opts.Logger,
	}, nil
}

// Segments returns a copy of the segment list
func (w *Wheel) Segments() []Segment {
	out := make([]Segment, len(w.segments))
	copy(out, w.segments)
	return out
}

// Rotation returns the currently displayed rotation in degrees
func (w *Wheel) Rotation() float64 {
	return w.rotation
}

// Spinning reports whether an animation is in flight
func (w *Wheel) Spinning() bool {
	return w.session != nil
}

// Session returns the in-flight session, nil at rest
func (w *Wheel) Session() *SpinSession {
	return w.session
}

// Gate returns the cooldown gate
func (w *Wheel) Gate() *Gate {
	return w.gate
}

// PointerIndex returns the segment currently under the pointer
func (w *Wheel) PointerIndex() int {
	return SelectSegment(w.rotation, len(w.segments))
}

// Draw renders the wheel at its current rotation
func (w *Wheel) Draw() {
	if w.renderer == nil {
		return
	}
	w.renderer.RenderWheel(w.rotation, w.segments)
}

// Spin starts a new spin if none is running and the gate is open
func (w *Wheel) Spin() (*SpinSession, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if w.session != nil {
		return nil, ErrSpinning
	}
	if !w.gate.CanSpin() {
		return nil, ErrCooldown
	}

	s := &SpinSession{
		ID:            uuid.NewString(),
		Start:         w.clock.Now(),
		TotalRotation: RollRotation(w.rng),
	}
	w.session = s
	w.rotation = 0
	w.Draw()

	w.log.Info().
		Str("session", s.ID).
		Float64("total_rotation", s.TotalRotation).
		Msg("spin started")

	s.frame = w.frames.RequestFrame(w.onFrame)
	return s, nil
}

// Cancel aborts the in-flight spin without crediting or arming the gate
// Returns false when no spin was running
func (w *Wheel) Cancel() bool {
	s := w.session
	if s == nil {
		return false
	}
	s.cancelled = true
	w.frames.CancelFrame(s.frame)
	w.session = nil

	w.log.Info().Str("session", s.ID).Dur("elapsed", s.Elapsed).Msg("spin cancelled")
	return true
}

// Close cancels any spin and rejects further requests
func (w *Wheel) Close() {
	w.Cancel()
	w.closed = true
}

// onFrame advances the animation by one frame
func (w *Wheel) onFrame(now time.Time) {
	s := w.session
	if s == nil || s.cancelled {
		return
	}

	s.Elapsed = now.Sub(s.Start)
	progress := float64(s.Elapsed) / float64(w.duration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	w.rotation = s.TotalRotation * EaseInOutCubic(progress)
	w.Draw()

	if progress < 1 {
		s.frame = w.frames.RequestFrame(w.onFrame)
		return
	}
	w.finish(s, now)
}

// finish settles a completed spin: credit, arm the gate, clear the session
func (w *Wheel) finish(s *SpinSession, now time.Time) {
	index := SelectSegment(s.TotalRotation, len(w.segments))
	seg := w.segments[index]

	w.balance.Credit(seg.Value)
	w.gate.Arm()
	w.session = nil

	w.log.Info().
		Str("session", s.ID).
		Int("index", index).
		Int("reward", seg.Value).
		Dur("elapsed", s.Elapsed).
		Msg("spin finished")

	if w.onResult != nil {
		w.onResult(SpinResult{
			SessionID:     s.ID,
			Index:         index,
			Segment:       seg,
			TotalRotation: s.TotalRotation,
			FinishedAt:    now,
		})
	}
}
