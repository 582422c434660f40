package pong

// Score is an observable counter bumped on every player paddle hit. It lives
// outside State and is never reset by a lost point.
type Score struct {
	value    int
	perHit   int
	nextID   int
	watchers map[int]func(int)
}

func NewScore(perHit int) *Score {
	return &Score{perHit: perHit, watchers: make(map[int]func(int))}
}

func (s *Score) Value() int { return s.value }

// Observe applies one frame's events.
func (s *Score) Observe(ev Events) {
	if !ev.PlayerHit || s.perHit == 0 {
		return
	}
	s.value += s.perHit
	for _, fn := range s.watchers {
		fn(s.value)
	}
}

// Reset zeroes the counter and notifies watchers.
func (s *Score) Reset() {
	s.value = 0
	for _, fn := range s.watchers {
		fn(0)
	}
}

// Subscribe registers fn for every change and returns a func that removes it.
func (s *Score) Subscribe(fn func(int)) func() {
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	return func() { delete(s.watchers, id) }
}
