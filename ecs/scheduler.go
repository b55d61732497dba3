package ecs

import (
	"fmt"
	"time"
)

// System advances the world by one step of dt. A returned error is fatal for
// the step: the scheduler stops and hands it to the caller.
type System interface {
	Update(w *World, dt time.Duration) error
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in registration order.
func (s *Scheduler) Update(w *World, dt time.Duration) error {
	for _, system := range s.systems {
		if err := system.Update(w, dt); err != nil {
			return fmt.Errorf("scheduler: %T: %w", system, err)
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
