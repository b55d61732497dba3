package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/topdown/input"
)

// holdFor is how long a key counts as held after its last press event.
// Terminals report presses and autorepeat but never releases.
const holdFor = 180 * time.Millisecond

// decayKeys is an input.Source fed by tcell key events.
type decayKeys struct {
	now      func() time.Time
	lastSeen map[input.Key]time.Time
	released map[input.Key]bool
}

func newDecayKeys() *decayKeys {
	return &decayKeys{
		now:      time.Now,
		lastSeen: map[input.Key]time.Time{},
		released: map[input.Key]bool{},
	}
}

// press records a key event. It reports false for keys it does not map.
func (d *decayKeys) press(ev *tcell.EventKey) bool {
	key, ok := mapKey(ev)
	if !ok {
		return false
	}
	d.lastSeen[key] = d.now()
	return true
}

// Poll expires keys whose hold window has passed; an expiry counts as a
// release for that step.
func (d *decayKeys) Poll() error {
	now := d.now()
	clear(d.released)
	for key, seen := range d.lastSeen {
		if now.Sub(seen) > holdFor {
			delete(d.lastSeen, key)
			d.released[key] = true
		}
	}
	return nil
}

func (d *decayKeys) Held(k input.Key) bool {
	_, ok := d.lastSeen[k]
	return ok
}

func (d *decayKeys) Released(k input.Key) bool {
	return d.released[k]
}

func mapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return input.KeyUp, true
		case 's', 'S', 'j':
			return input.KeyDown, true
		case 'a', 'A', 'h':
			return input.KeyLeft, true
		case 'd', 'D', 'l':
			return input.KeyRight, true
		case 'i':
			return input.KeyInspector, true
		}
	}
	return 0, false
}
