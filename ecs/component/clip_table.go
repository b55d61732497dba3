package component

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteClipTable = errors.New("component: clip table is missing entries")
	ErrClipOutOfSheet      = errors.New("component: clip frames exceed sheet")
	ErrClipNotFound        = errors.New("component: no clip for state")
)

// ClipKey selects one of the eight clip table entries.
type ClipKey struct {
	Activity ActivityState
	Facing   FacingDirection
}

func (k ClipKey) String() string {
	return k.Activity.String() + "/" + k.Facing.String()
}

// ClipTable maps every (activity, facing) pair to a clip. It is total and
// read-only once built.
type ClipTable struct {
	entries [activityCount][facingCount]ClipBinding
	built   bool
}

// NewClipTable validates clips against the sheets the provider returns for
// each activity. Every one of the eight keys must be present.
func NewClipTable(clips map[ClipKey]AnimationClip, sheets SheetProvider) (*ClipTable, error) {
	if sheets == nil {
		return nil, errors.New("component: clip table: nil sheet provider")
	}

	var missing []string
	t := &ClipTable{}
	for a := ActivityState(0); a < activityCount; a++ {
		handle, layout, err := sheets.Sheet(a)
		if err != nil {
			return nil, fmt.Errorf("component: clip table: sheet for %s: %w", a, err)
		}
		for f := FacingDirection(0); f < facingCount; f++ {
			key := ClipKey{Activity: a, Facing: f}
			clip, ok := clips[key]
			if !ok {
				missing = append(missing, key.String())
				continue
			}
			if err := clip.Validate(); err != nil {
				return nil, fmt.Errorf("component: clip table: %s: %w", key, err)
			}
			if n := layout.FrameCount(); int(clip.LastFrame) >= n {
				return nil, fmt.Errorf("%w: %s ends at frame %d, sheet %q has %d frames", ErrClipOutOfSheet, key, clip.LastFrame, handle, n)
			}
			t.entries[a][f] = ClipBinding{Clip: clip, Sheet: handle, Layout: layout}
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteClipTable, missing)
	}

	for key := range clips {
		if !key.Activity.Valid() || !key.Facing.Valid() {
			return nil, fmt.Errorf("component: clip table: key out of range: %s", key)
		}
	}

	t.built = true
	return t, nil
}

// Lookup returns the binding for the pair. An error here means the caller
// produced a state the table was never built for.
func (t *ClipTable) Lookup(activity ActivityState, facing FacingDirection) (ClipBinding, error) {
	if t == nil || !t.built {
		return ClipBinding{}, fmt.Errorf("%w: table not built", ErrClipNotFound)
	}
	if !activity.Valid() || !facing.Valid() {
		return ClipBinding{}, fmt.Errorf("%w: %s", ErrClipNotFound, ClipKey{Activity: activity, Facing: facing})
	}
	return t.entries[activity][facing], nil
}
