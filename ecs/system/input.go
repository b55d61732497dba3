package system

import (
	"fmt"
	"time"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/input"
)

// InputSystem samples the input source once per step and copies the held
// direction keys onto every entity with an Input component.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ time.Duration) error {
	if w == nil || i.source == nil {
		return nil
	}

	if p, ok := i.source.(input.Poller); ok {
		if err := p.Poll(); err != nil {
			return fmt.Errorf("input system: %w", err)
		}
	}

	sample := component.Input{
		Up:    i.source.Held(input.KeyUp),
		Down:  i.source.Held(input.KeyDown),
		Left:  i.source.Held(input.KeyLeft),
		Right: i.source.Held(input.KeyRight),
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		*in = sample
	})
	return nil
}
