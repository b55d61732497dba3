package component

import "fmt"

// FacingDirection is the direction the character last moved in.
type FacingDirection uint8

const (
	FacingDown FacingDirection = iota
	FacingUp
	FacingLeft
	FacingRight
	facingCount
)

var facingNames = [facingCount]string{"down", "up", "left", "right"}

func (f FacingDirection) String() string {
	if f >= facingCount {
		return fmt.Sprintf("facing(%d)", uint8(f))
	}
	return facingNames[f]
}

func (f FacingDirection) Valid() bool {
	return f < facingCount
}

func ParseFacingDirection(s string) (FacingDirection, error) {
	for i, name := range facingNames {
		if name == s {
			return FacingDirection(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown facing direction %q", s)
}

// ActivityState is Moving while the resolved input vector is non-zero.
type ActivityState uint8

const (
	ActivityIdle ActivityState = iota
	ActivityMoving
	activityCount
)

var activityNames = [activityCount]string{"idle", "moving"}

func (a ActivityState) String() string {
	if a >= activityCount {
		return fmt.Sprintf("activity(%d)", uint8(a))
	}
	return activityNames[a]
}

func (a ActivityState) Valid() bool {
	return a < activityCount
}

func ParseActivityState(s string) (ActivityState, error) {
	for i, name := range activityNames {
		if name == s {
			return ActivityState(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown activity state %q", s)
}

// Locomotion is written by the movement step and read by the animation step
// of the same entity.
type Locomotion struct {
	Facing   FacingDirection
	Activity ActivityState
}

var LocomotionComponent = NewComponent[Locomotion]()
