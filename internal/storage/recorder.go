package storage

import (
	"time"

	"github.com/san-kum/waitpong/internal/pong"
)

// Recorder buffers every simulated frame for Save. Every is the sampling
// stride; 0 or 1 keeps all frames.
type Recorder struct {
	Every  int
	frames []Frame
	seen   int
}

func NewRecorder(every int) *Recorder {
	return &Recorder{Every: every}
}

func (r *Recorder) OnFrame(st pong.State, _ pong.Events, now time.Duration) {
	r.seen++
	if r.Every > 1 && (r.seen-1)%r.Every != 0 {
		return
	}
	r.frames = append(r.frames, Frame{Time: now, State: st})
}

func (r *Recorder) Frames() []Frame { return r.frames }
