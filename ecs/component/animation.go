package component

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClip = errors.New("component: invalid animation clip")

// AnimationClip is a contiguous, always-looping run of frames in one sheet.
type AnimationClip struct {
	FirstFrame uint
	LastFrame  uint
	FPS        uint
}

func (c AnimationClip) Validate() error {
	if c.FirstFrame > c.LastFrame {
		return fmt.Errorf("%w: first frame %d after last frame %d", ErrInvalidClip, c.FirstFrame, c.LastFrame)
	}
	if c.FPS == 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalidClip)
	}
	return nil
}

// FramePeriod is how long each frame stays on screen.
func (c AnimationClip) FramePeriod() time.Duration {
	if c.FPS == 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

func (c AnimationClip) Contains(frame uint) bool {
	return c.FirstFrame <= frame && frame <= c.LastFrame
}

// ClipBinding is a clip together with the sheet its frames live in.
type ClipBinding struct {
	Clip   AnimationClip
	Sheet  SheetHandle
	Layout AtlasLayout
}

// SameClip reports whether both bindings play the same frames of the same
// sheet. Playback rate is not part of clip identity.
func (b ClipBinding) SameClip(o ClipBinding) bool {
	return b.Sheet == o.Sheet &&
		b.Clip.FirstFrame == o.Clip.FirstFrame &&
		b.Clip.LastFrame == o.Clip.LastFrame
}

// AnimationRuntimeState is the playback position of one entity. It is always
// replaced as a whole value so the sheet and frame never disagree.
type AnimationRuntimeState struct {
	Clip    AnimationClip
	Sheet   SheetHandle
	Layout  AtlasLayout
	Frame   uint
	Elapsed time.Duration
}

// StartClip returns the state at the first frame of b.
func StartClip(b ClipBinding) AnimationRuntimeState {
	return AnimationRuntimeState{
		Clip:   b.Clip,
		Sheet:  b.Sheet,
		Layout: b.Layout,
		Frame:  b.Clip.FirstFrame,
	}
}

// Binding returns the clip binding currently playing.
func (s AnimationRuntimeState) Binding() ClipBinding {
	return ClipBinding{Clip: s.Clip, Sheet: s.Sheet, Layout: s.Layout}
}

// Tick advances by dt, stepping as many whole frame periods as dt covers and
// carrying the remainder. Frames past LastFrame wrap to FirstFrame.
func (s AnimationRuntimeState) Tick(dt time.Duration) AnimationRuntimeState {
	period := s.Clip.FramePeriod()
	if period <= 0 || dt < 0 {
		return s
	}

	s.Elapsed += dt
	for s.Elapsed >= period {
		s.Elapsed -= period
		s.Frame++
		if s.Frame > s.Clip.LastFrame {
			s.Frame = s.Clip.FirstFrame
		}
	}
	return s
}

// Animation drives an entity's sprite from its clip table.
type Animation struct {
	Table *ClipTable
	State AnimationRuntimeState
}

// NewAnimation starts on the clip resolved for the initial locomotion.
func NewAnimation(table *ClipTable, loc Locomotion) (Animation, error) {
	b, err := table.Lookup(loc.Activity, loc.Facing)
	if err != nil {
		return Animation{}, err
	}
	return Animation{Table: table, State: StartClip(b)}, nil
}

// Frame is what the renderer draws this step.
func (a *Animation) Frame() (SheetHandle, AtlasLayout, uint) {
	return a.State.Sheet, a.State.Layout, a.State.Frame
}

var AnimationComponent = NewComponent[Animation]()
