package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is an autopilot source. The tengo program is run once per Poll with
// the global `tick` set, and must leave the held key names in `keys`.
type Script struct {
	name     string
	compiled *tengo.Compiled
	tick     int
	held     map[Key]bool
	prev     map[Key]bool
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("keys", []any{})
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %s: %w", name, err)
	}
	return &Script{
		name:     name,
		compiled: compiled,
		held:     map[Key]bool{},
		prev:     map[Key]bool{},
	}, nil
}

func (s *Script) Poll() error {
	if err := s.compiled.Set("tick", s.tick); err != nil {
		return fmt.Errorf("input: script %s: set tick: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input: script %s: tick %d: %w", s.name, s.tick, err)
	}
	s.tick++

	next := make(map[Key]bool, len(s.held))
	for _, raw := range s.compiled.Get("keys").Array() {
		name, ok := raw.(string)
		if !ok {
			return fmt.Errorf("input: script %s: key %v is not a string", s.name, raw)
		}
		key, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("input: script %s: %w", s.name, err)
		}
		next[key] = true
	}
	s.prev, s.held = s.held, next
	return nil
}

func (s *Script) Held(k Key) bool {
	return s.held[k]
}

func (s *Script) Released(k Key) bool {
	return s.prev[k] && !s.held[k]
}
