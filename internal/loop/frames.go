package loop

import "time"

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameFunc receives the host clock reading for the frame.
type FrameFunc func(now time.Duration)

// FrameRequester schedules a single callback for the next frame. A cancelled
// request never fires.
type FrameRequester interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameRequester for hosts that own their frame cadence: the
// host calls Run once per displayed frame.
type FrameQueue struct {
	next  FrameID
	order []FrameID
	funcs map[FrameID]FrameFunc
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{funcs: make(map[FrameID]FrameFunc)}
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.next++
	id := q.next
	q.order = append(q.order, id)
	q.funcs[id] = fn
	return id
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.funcs, id)
}

// Run fires every callback requested before the call and returns how many
// fired. Requests made by those callbacks wait for the next Run.
func (q *FrameQueue) Run(now time.Duration) int {
	batch := q.order
	q.order = nil
	fired := 0
	for _, id := range batch {
		fn, ok := q.funcs[id]
		if !ok {
			continue
		}
		delete(q.funcs, id)
		fn(now)
		fired++
	}
	return fired
}

// Pending reports the number of live requests.
func (q *FrameQueue) Pending() int { return len(q.funcs) }
