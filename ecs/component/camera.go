package component

// Camera follows the entity named by TargetName. Smoothness 1 copies the
// target position every step.
type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
