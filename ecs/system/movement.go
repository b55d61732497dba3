package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// ResolveMovement turns one input sample into the next position and
// locomotion state.
//
// The held axes are summed into a direction vector. A zero vector leaves the
// entity Idle with facing and position untouched. Otherwise the vector is
// normalized so diagonals are no faster than a single axis, scaled by
// speed*dt and added to pos. Facing follows the dominant axis; when both axes
// are equal the vertical one wins.
func ResolveMovement(in component.Input, pos cp.Vector, loc component.Locomotion, speed float64, dt time.Duration) (cp.Vector, component.Locomotion) {
	var dir cp.Vector
	if in.Up {
		dir.Y++
	}
	if in.Down {
		dir.Y--
	}
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}

	if dir.X == 0 && dir.Y == 0 {
		loc.Activity = component.ActivityIdle
		return pos, loc
	}

	dir = dir.Normalize()
	pos = pos.Add(dir.Mult(speed * dt.Seconds()))

	loc.Activity = component.ActivityMoving
	loc.Facing = dominantFacing(dir)
	return pos, loc
}

func dominantFacing(dir cp.Vector) component.FacingDirection {
	if math.Abs(dir.Y) >= math.Abs(dir.X) {
		if dir.Y > 0 {
			return component.FacingUp
		}
		return component.FacingDown
	}
	if dir.X > 0 {
		return component.FacingRight
	}
	return component.FacingLeft
}

// MovementSystem integrates the position of every entity that has input, a
// movement speed, a transform and locomotion state.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World, dt time.Duration) error {
	if w == nil {
		return nil
	}

	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		component.TransformComponent.Kind(),
		component.LocomotionComponent.Kind(),
		func(e ecs.Entity, in *component.Input, mv *component.Movement, t *component.Transform, loc *component.Locomotion) {
			pos, next := ResolveMovement(*in, cp.Vector{X: t.X, Y: t.Y}, *loc, mv.Speed, dt)
			t.X, t.Y = pos.X, pos.Y
			*loc = next
		})
	return nil
}
