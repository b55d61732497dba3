package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/ecs/component"
)

// LoadSheet loads an embedded (or on-disk) image, registers it under its path
// and returns the handle with the image size. Repeat loads hit the cache.
func LoadSheet(path string) (component.SheetHandle, image.Point, error) {
	if path == "" {
		return "", image.Point{}, fmt.Errorf("render: empty image path")
	}
	key := component.SheetHandle(path)
	if img := GetImage(key); img != nil {
		return key, img.Bounds().Size(), nil
	}
	src, err := assets.LoadImage(path)
	if err != nil {
		return "", image.Point{}, fmt.Errorf("render: load %s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(src)
	RegisterImage(key, img)
	return key, img.Bounds().Size(), nil
}
