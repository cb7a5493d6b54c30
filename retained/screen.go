package retained

import "time"

// Screen is the root of one visible UI state. Implementations embed
// ScreenBase and provide Update, which the Manager calls once per frame
// while the screen is on top of the stack.
type Screen interface {
	Element

	// Update evaluates time-based transitions. Elapsed time is already
	// advanced when it is called.
	Update(ctx *Context)

	// Finish and Finished are provided by ScreenBase.
	Finish()
	Finished() bool

	screen() *ScreenBase
}

// ScreenBase carries the elapsed time and completion flag of a screen.
type ScreenBase struct {
	WidgetContainer

	elapsed  time.Duration
	finished bool
}

// Init binds the base to the screen embedding it. Call it once from the
// screen's constructor.
func (s *ScreenBase) Init(self Screen, id string) {
	s.init(self, id)
}

func (s *ScreenBase) screen() *ScreenBase { return s }

// Elapsed returns the time the screen has been active.
func (s *ScreenBase) Elapsed() time.Duration { return s.elapsed }

// Finished reports whether the screen asked to be removed.
func (s *ScreenBase) Finished() bool { return s.finished }

// Finish marks the screen done. The Manager drops it after the current
// Update returns. Finishing is terminal and idempotent.
func (s *ScreenBase) Finish() { s.finished = true }

// advance adds delta to the elapsed time. Negative deltas are ignored so
// the elapsed time never runs backwards.
func (s *ScreenBase) advance(delta time.Duration) {
	if delta > 0 {
		s.elapsed += delta
	}
}
