package component

import (
	"errors"
	"fmt"
)

var ErrInvalidSpeed = errors.New("component: movement speed must be positive")

// Movement holds the walking speed in world units per second. The position it
// integrates is the entity's Transform.
type Movement struct {
	Speed float64
}

func NewMovement(speed float64) (Movement, error) {
	if !(speed > 0) {
		return Movement{}, fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	return Movement{Speed: speed}, nil
}

var MovementComponent = NewComponent[Movement]()
