package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/topdown/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

// joinWorld holds four entities with overlapping int components:
//
//	e1: a
//	e2: a b c d
//	e3: a b c
//	e4: b d
func joinWorld(t *testing.T) (*World, [4]Entity, [4]component.ComponentKind[int]) {
	t.Helper()
	w := NewWorld()
	var ents [4]Entity
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	var kinds [4]component.ComponentKind[int]
	for i := range kinds {
		kinds[i] = component.NewComponentKind[int]()
	}

	has := map[int][]int{0: {0}, 1: {0, 1, 2, 3}, 2: {0, 1, 2}, 3: {1, 3}}
	for ei, ks := range has {
		for _, k := range ks {
			if err := Add(w, ents[ei], kinds[k], intPtr(10*ei+k)); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
	}
	return w, ents, kinds
}

func TestForEachJoins(t *testing.T) {
	tests := []struct {
		name string
		run  func(w *World, k [4]component.ComponentKind[int]) []Entity
		want []int
	}{
		{
			name: "single",
			run: func(w *World, k [4]component.ComponentKind[int]) (out []Entity) {
				ForEach(w, k[0], func(e Entity, _ *int) { out = append(out, e) })
				return out
			},
			want: []int{0, 1, 2},
		},
		{
			name: "pair",
			run: func(w *World, k [4]component.ComponentKind[int]) (out []Entity) {
				ForEach2(w, k[1], k[3], func(e Entity, _, _ *int) { out = append(out, e) })
				return out
			},
			want: []int{1, 3},
		},
		{
			name: "triple",
			run: func(w *World, k [4]component.ComponentKind[int]) (out []Entity) {
				ForEach3(w, k[0], k[1], k[2], func(e Entity, _, _, _ *int) { out = append(out, e) })
				return out
			},
			want: []int{1, 2},
		},
		{
			name: "quad",
			run: func(w *World, k [4]component.ComponentKind[int]) (out []Entity) {
				ForEach4(w, k[0], k[1], k[2], k[3], func(e Entity, _, _, _, _ *int) { out = append(out, e) })
				return out
			},
			want: []int{1},
		},
		{
			name: "unused_kind",
			run: func(w *World, k [4]component.ComponentKind[int]) (out []Entity) {
				ForEach2(w, k[0], component.NewComponentKind[int](), func(e Entity, _, _ *int) { out = append(out, e) })
				return out
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, ents, kinds := joinWorld(t)
			got := toSet(tc.run(w, kinds))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entities, got %d", len(tc.want), len(got))
			}
			for _, i := range tc.want {
				if _, ok := got[ents[i]]; !ok {
					t.Fatalf("expected e%d in result", i+1)
				}
			}
		})
	}
}

func TestForEachSkipsDestroyedAndSeesWrites(t *testing.T) {
	w, ents, kinds := joinWorld(t)
	if !DestroyEntity(w, ents[2]) {
		t.Fatalf("destroy failed")
	}

	ForEach3(w, kinds[0], kinds[1], kinds[2], func(e Entity, a, _, _ *int) {
		if e == ents[2] {
			t.Fatalf("visited destroyed entity")
		}
		*a = -1
	})
	if v, _ := Get(w, ents[1], kinds[0]); *v != -1 {
		t.Fatalf("expected write through pointer, got %d", *v)
	}
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	w, ents, kinds := joinWorld(t)
	visited := 0
	ForEach(w, kinds[0], func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 3 {
		t.Fatalf("expected 3 visits, got %d", visited)
	}
	if Has(w, ents[0], kinds[0]) || IsAlive(w, ents[1]) {
		t.Fatalf("expected visited entities destroyed")
	}
	if !IsAlive(w, ents[3]) {
		t.Fatalf("unvisited entity destroyed")
	}
}

func TestDestroyedHandleStaysDead(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !DestroyEntity(w, old) {
		t.Fatalf("expected destroy to succeed")
	}
	if DestroyEntity(w, old) {
		t.Fatalf("second destroy should report false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused handle must carry a new generation")
	}
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused entity must not inherit components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entity with component")
	}
}

func TestAddRejectsNilAndInvalidKind(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
	err   error
}

func (s countingSystem) Update(_ *World, _ time.Duration) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestSchedulerStopsOnError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	s := NewScheduler(
		countingSystem{calls: &calls, name: "a"},
		countingSystem{calls: &calls, name: "b", err: boom},
		countingSystem{calls: &calls, name: "c"},
	)

	err := s.Update(NewWorld(), time.Millisecond)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("expected systems a,b to run, got %v", calls)
	}
}
