package fx

import "time"

// FrameHandle identifies a pending frame request. The zero handle is never
// issued.
type FrameHandle uint64

// FrameFunc runs once per display frame.
type FrameFunc func(now time.Time)

// Scheduler is the host's per-frame callback service, in the shape of a
// browser's requestAnimationFrame.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	fn     FrameFunc
	done   bool
}

// FrameQueue is a Scheduler for hosts that already own a frame loop: they
// call Flush once per tick. Callbacks requested during a Flush run on the
// next one. A FrameQueue is not safe for concurrent use.
type FrameQueue struct {
	next    FrameHandle
	pending []*frameRequest
	index   map[FrameHandle]*frameRequest
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{index: make(map[FrameHandle]*frameRequest)}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	if q.index == nil {
		q.index = make(map[FrameHandle]*frameRequest)
	}
	q.next++
	r := &frameRequest{handle: q.next, fn: fn}
	q.pending = append(q.pending, r)
	q.index[r.handle] = r
	return r.handle
}

func (q *FrameQueue) CancelFrame(h FrameHandle) {
	r, ok := q.index[h]
	if !ok {
		return
	}
	r.done = true
	delete(q.index, h)
}

// Flush runs every callback that was pending when it was called and returns
// how many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	batch := q.pending
	q.pending = nil
	ran := 0
	for _, r := range batch {
		if r.done {
			continue
		}
		r.done = true
		delete(q.index, r.handle)
		r.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of requests waiting for the next Flush.
func (q *FrameQueue) Pending() int { return len(q.index) }
