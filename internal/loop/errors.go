package loop

import "errors"

var (
	// ErrNoSurface indicates a game built without a drawing surface.
	ErrNoSurface = errors.New("loop: no drawing surface")

	// ErrNoScheduler indicates a game built without a frame requester.
	ErrNoScheduler = errors.New("loop: no frame requester")
)
