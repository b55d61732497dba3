package input

import "fmt"

// Key is a logical input, independent of the device that produces it.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyMenu
	KeyInspector
	KeyFullscreen
	keyCount
)

var keyNames = [keyCount]string{"up", "down", "left", "right", "menu", "inspector", "fullscreen"}

func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("key(%d)", uint8(k))
	}
	return keyNames[k]
}

func ParseKey(s string) (Key, error) {
	for i, name := range keyNames {
		if name == s {
			return Key(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown key %q", s)
}

// Source answers key queries for the current step. The simulation never keeps
// key state between steps itself.
type Source interface {
	Held(k Key) bool
	Released(k Key) bool
}

// Poller is implemented by sources that must be advanced once per step before
// they are queried.
type Poller interface {
	Poll() error
}

// Static is a fixed set of held keys. Released is always false.
type Static map[Key]bool

func (s Static) Held(k Key) bool {
	return s[k]
}

func (s Static) Released(Key) bool {
	return false
}
