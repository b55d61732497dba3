package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCleanPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"prefab_bare", cleanPrefabPath("player.yaml"), "player.yaml"},
		{"prefab_prefixed", cleanPrefabPath("prefabs/player.yaml"), "player.yaml"},
		{"script_bare", cleanScriptPath("patrol"), "scripts/patrol.tengo"},
		{"script_prefixed", cleanScriptPath("prefabs/scripts/patrol.tengo"), "scripts/patrol.tengo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestEmbeddedPrefabsDecode(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	anim, err := DecodeComponentSpec[AnimationComponentSpec](spec.Components["animation"])
	if err != nil {
		t.Fatalf("decode animation: %v", err)
	}
	if len(anim.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(anim.Sheets))
	}
	if got := anim.Clips["idle"]["down"]; got != (ClipSpec{First: 0, Last: 3, FPS: 10}) {
		t.Fatalf("unexpected idle/down clip %+v", got)
	}
	for _, activity := range []string{"idle", "moving"} {
		if n := len(anim.Clips[activity]); n != 4 {
			t.Fatalf("%s: expected 4 facings, got %d", activity, n)
		}
	}

	mv, err := DecodeComponentSpec[MovementComponentSpec](spec.Components["movement"])
	if err != nil || mv.Speed == nil || *mv.Speed != 700 {
		t.Fatalf("unexpected movement spec %+v (%v)", mv, err)
	}

	if _, err := LoadScript("patrol"); err != nil {
		t.Fatalf("load patrol script: %v", err)
	}
}

func TestDecodeNilSpecIsZero(t *testing.T) {
	got, err := DecodeComponentSpec[TransformComponentSpec](nil)
	if err != nil || got != (TransformComponentSpec{}) {
		t.Fatalf("expected zero spec, got %+v (%v)", got, err)
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("name: player\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "player.yaml" {
			t.Fatalf("expected player.yaml event, got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
