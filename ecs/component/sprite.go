package component

// Sprite draws a whole static image centered on the transform. Animated
// entities draw from their Animation component instead.
type Sprite struct {
	Image SheetHandle
}

var SpriteComponent = NewComponent[Sprite]()
