package component

import (
	"errors"
	"testing"
	"time"
)

func idleDown() AnimationRuntimeState {
	return StartClip(ClipBinding{
		Clip:   AnimationClip{FirstFrame: 0, LastFrame: 3, FPS: 10},
		Sheet:  "idle",
		Layout: AtlasLayout{FrameW: 64, FrameH: 64, Cols: 4, Rows: 4},
	})
}

func TestTickAdvancesWholePeriods(t *testing.T) {
	tests := []struct {
		name        string
		start       AnimationRuntimeState
		dt          time.Duration
		wantFrame   uint
		wantElapsed time.Duration
	}{
		{"under_one_period", idleDown(), 99 * time.Millisecond, 0, 99 * time.Millisecond},
		{"exactly_one_period", idleDown(), 100 * time.Millisecond, 1, 0},
		{"three_and_a_half", idleDown(), 350 * time.Millisecond, 3, 50 * time.Millisecond},
		{"long_pause_wraps", idleDown(), 1050 * time.Millisecond, 2, 50 * time.Millisecond},
		{
			name: "wrap_from_last",
			start: func() AnimationRuntimeState {
				s := idleDown()
				s.Frame = 3
				s.Elapsed = 90 * time.Millisecond
				return s
			}(),
			dt:          20 * time.Millisecond,
			wantFrame:   0,
			wantElapsed: 10 * time.Millisecond,
		},
		{"zero_dt", idleDown(), 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.start.Tick(tc.dt)
			if got.Frame != tc.wantFrame {
				t.Fatalf("expected frame %d, got %d", tc.wantFrame, got.Frame)
			}
			if got.Elapsed != tc.wantElapsed {
				t.Fatalf("expected carry %v, got %v", tc.wantElapsed, got.Elapsed)
			}
			if got.Sheet != tc.start.Sheet || got.Clip != tc.start.Clip {
				t.Fatalf("tick must not change the clip")
			}
		})
	}
}

func TestTickIsAdditive(t *testing.T) {
	steps := []time.Duration{
		16 * time.Millisecond,
		33 * time.Millisecond,
		250 * time.Millisecond,
		7 * time.Millisecond,
		100 * time.Millisecond,
		1 * time.Second,
	}

	split := idleDown()
	var total time.Duration
	for _, dt := range steps {
		split = split.Tick(dt)
		total += dt
	}
	whole := idleDown().Tick(total)

	if split != whole {
		t.Fatalf("expected split ticks %+v to equal one tick %+v", split, whole)
	}
}

func TestTickStaysInClip(t *testing.T) {
	s := StartClip(ClipBinding{
		Clip:   AnimationClip{FirstFrame: 12, LastFrame: 17, FPS: 10},
		Sheet:  "walk",
		Layout: AtlasLayout{FrameW: 64, FrameH: 64, Cols: 6, Rows: 4},
	})
	for i := 0; i < 500; i++ {
		s = s.Tick(time.Duration(i%37) * time.Millisecond * 3)
		if !s.Clip.Contains(s.Frame) {
			t.Fatalf("step %d: frame %d outside [%d,%d]", i, s.Frame, s.Clip.FirstFrame, s.Clip.LastFrame)
		}
	}
}

func TestTickIgnoresUnbuiltState(t *testing.T) {
	var s AnimationRuntimeState
	if got := s.Tick(time.Second); got != s {
		t.Fatalf("expected zero state to stay put, got %+v", got)
	}
}

func TestClipValidate(t *testing.T) {
	tests := []struct {
		name    string
		clip    AnimationClip
		wantErr bool
	}{
		{"single_frame", AnimationClip{FirstFrame: 2, LastFrame: 2, FPS: 1}, false},
		{"range", AnimationClip{FirstFrame: 0, LastFrame: 3, FPS: 10}, false},
		{"reversed", AnimationClip{FirstFrame: 4, LastFrame: 3, FPS: 10}, true},
		{"zero_fps", AnimationClip{FirstFrame: 0, LastFrame: 3}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.clip.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidClip) {
					t.Fatalf("expected ErrInvalidClip, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAtlasLayoutFrameRect(t *testing.T) {
	l := AtlasLayout{FrameW: 64, FrameH: 64, Cols: 6, Rows: 4}
	r := l.FrameRect(13)
	if r.Min.X != 64 || r.Min.Y != 128 || r.Dx() != 64 || r.Dy() != 64 {
		t.Fatalf("unexpected rect for frame 13: %v", r)
	}
	if l.FrameCount() != 24 {
		t.Fatalf("expected 24 frames, got %d", l.FrameCount())
	}
}

func TestNewMovementRejectsNonPositiveSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1} {
		if _, err := NewMovement(speed); !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("speed %v: expected ErrInvalidSpeed, got %v", speed, err)
		}
	}
	m, err := NewMovement(700)
	if err != nil || m.Speed != 700 {
		t.Fatalf("expected speed 700, got %v err=%v", m.Speed, err)
	}
}
