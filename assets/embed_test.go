package assets

import "testing"

func TestEmbeddedSheetsMatchPrefabLayouts(t *testing.T) {
	tests := []struct {
		path string
		w, h int
	}{
		{"vampire_idle.png", 4 * 64, 4 * 64},
		{"vampire_walk.png", 6 * 64, 4 * 64},
		{"assets/tree_autumn.png", 64, 96},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			img, err := LoadImage(tc.path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tc.w || b.Dy() != tc.h {
				t.Fatalf("expected %dx%d, got %v", tc.w, tc.h, b)
			}
		})
	}
}

func TestLoadMissingImage(t *testing.T) {
	if _, err := LoadImage("nope.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
