package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs/component"
)

var images = map[component.SheetHandle]*ebiten.Image{}

// RegisterImage stores an image by handle.
func RegisterImage(key component.SheetHandle, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by handle.
func GetImage(key component.SheetHandle) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}
