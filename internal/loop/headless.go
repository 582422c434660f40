package loop

import (
	"context"
	"time"
)

// Drive pumps q with a synthetic clock advancing by step per frame. before,
// when set, runs ahead of each frame (input injection). It stops after frames
// frames, when nothing is pending, or when ctx is done.
func Drive(ctx context.Context, q *FrameQueue, frames int, step time.Duration, before func(now time.Duration)) (time.Duration, error) {
	var now time.Duration
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return now, ctx.Err()
		default:
		}

		if q.Pending() == 0 {
			return now, nil
		}
		now += step
		if before != nil {
			before(now)
		}
		q.Run(now)
	}
	return now, nil
}
