package component

import "image"

// SheetHandle names a loaded sprite sheet. The renderer resolves it to an
// image; the simulation only compares handles.
type SheetHandle string

// AtlasLayout is a uniform grid of frames, numbered left to right, top to
// bottom.
type AtlasLayout struct {
	FrameW int
	FrameH int
	Cols   int
	Rows   int
}

func (l AtlasLayout) FrameCount() int {
	if l.Cols <= 0 || l.Rows <= 0 {
		return 0
	}
	return l.Cols * l.Rows
}

// FrameRect returns the source rectangle of frame within the sheet.
func (l AtlasLayout) FrameRect(frame uint) image.Rectangle {
	if l.Cols <= 0 {
		return image.Rectangle{}
	}
	col := int(frame) % l.Cols
	row := int(frame) / l.Cols
	x, y := col*l.FrameW, row*l.FrameH
	return image.Rect(x, y, x+l.FrameW, y+l.FrameH)
}

// SheetProvider resolves the sheet used for an activity. Sheets are loaded
// before any entity that needs them is built.
type SheetProvider interface {
	Sheet(activity ActivityState) (SheetHandle, AtlasLayout, error)
}
