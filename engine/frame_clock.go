package engine

import (
	"sync"
	"time"
)

// FrameID identifies a pending frame request
type FrameID uint64

// FrameCallback receives the timestamp of the frame it runs in
type FrameCallback func(now time.Time)

// FrameClock schedules work for the next rendered frame
// Callers re-request from inside the callback to keep animating
type FrameClock interface {
	RequestFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}

// FrameScheduler is a cooperative FrameClock pumped by the owner's loop
// Callbacks requested before RunFrame run in that frame; callbacks requested
// while a frame is running wait for the next one
type FrameScheduler struct {
	mu      sync.Mutex
	nextID  FrameID
	order   []FrameID
	pending map[FrameID]FrameCallback

	frameCount uint64
}

// NewFrameScheduler creates an empty frame scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make(map[FrameID]FrameCallback),
	}
}

// RequestFrame queues cb for the next frame and returns a cancellation handle
func (fs *FrameScheduler) RequestFrame(cb FrameCallback) FrameID {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.nextID++
	id := fs.nextID
	fs.pending[id] = cb
	fs.order = append(fs.order, id)
	return id
}

// CancelFrame drops a pending request, unknown or already-run IDs are ignored
func (fs *FrameScheduler) CancelFrame(id FrameID) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.pending, id)
}

// RunFrame executes every callback queued before the call, in request order
// Returns the number of callbacks executed
func (fs *FrameScheduler) RunFrame(now time.Time) int {
	fs.mu.Lock()
	batch := fs.order
	fs.order = nil
	fs.frameCount++
	fs.mu.Unlock()

	ran := 0
	for _, id := range batch {
		fs.mu.Lock()
		cb, ok := fs.pending[id]
		delete(fs.pending, id)
		fs.mu.Unlock()

		// Cancelled by an earlier callback in the same batch
		if !ok || cb == nil {
			continue
		}
		cb(now)
		ran++
	}
	return ran
}

// Pending returns the number of live frame requests
func (fs *FrameScheduler) Pending() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.pending)
}

// FrameCount returns how many frames have been run
func (fs *FrameScheduler) FrameCount() uint64 {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.frameCount
}
