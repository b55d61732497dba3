package clock

import "time"

// Source reports the time elapsed since the previous step. Results are never
// negative.
type Source interface {
	Elapsed() time.Duration
}

// MaxStep bounds a single wall-clock step so a debugger pause or a dragged
// window does not fast-forward the simulation by minutes.
const MaxStep = 250 * time.Millisecond

// Wall measures real elapsed time on the monotonic clock. The first call
// returns zero.
type Wall struct {
	now  func() time.Time
	last time.Time
	max  time.Duration
}

func NewWall() *Wall {
	return &Wall{now: time.Now, max: MaxStep}
}

func (w *Wall) Elapsed() time.Duration {
	t := w.now()
	if w.last.IsZero() {
		w.last = t
		return 0
	}
	dt := t.Sub(w.last)
	w.last = t
	if dt < 0 {
		return 0
	}
	if w.max > 0 && dt > w.max {
		return w.max
	}
	return dt
}

// Reset makes the next Elapsed return zero, e.g. after leaving a menu.
func (w *Wall) Reset() {
	w.last = time.Time{}
}

// Fixed returns the same step every call.
type Fixed time.Duration

func FromTPS(tps int) Fixed {
	if tps <= 0 {
		return 0
	}
	return Fixed(time.Second / time.Duration(tps))
}

func (f Fixed) Elapsed() time.Duration {
	if f < 0 {
		return 0
	}
	return time.Duration(f)
}
