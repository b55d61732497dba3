package component

// Input stores the held direction keys sampled for this step. The axes are
// independent; opposite keys may be held together.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Any reports whether any direction key is held.
func (i Input) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
