package system

import (
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"orrery/ecs"
	"orrery/ecs/component"
)

// TourSystem runs an optional tengo tour script once per tick. The
// script gets `elapsed` (seconds since the tour started), a persistent
// `state` map, and the commands `focus(name)`, `speed(x)`, `reset_view()`
// and `finish()`. A script error disables the tour instead of killing
// the frame.
type TourSystem struct {
	compiled *tengo.Compiled
	state    *tengo.Map
	world    *ecs.World
	dt       float64
	elapsed  float64
	finished bool
	failed   bool
}

// NewTourSystem loads and compiles the tour script at path.
func NewTourSystem(path string, tps int) (*TourSystem, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tour: read %s: %w", path, err)
	}

	s := &TourSystem{
		dt:    1.0 / float64(tps),
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "fmt"))
	for name, fn := range s.builtins() {
		if err := script.Add(name, fn); err != nil {
			return nil, fmt.Errorf("tour: add builtin %s: %w", name, err)
		}
	}
	if err := script.Add("elapsed", 0.0); err != nil {
		return nil, fmt.Errorf("tour: add elapsed: %w", err)
	}
	if err := script.Add("state", s.state); err != nil {
		return nil, fmt.Errorf("tour: add state: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tour: compile %s: %w", path, err)
	}
	s.compiled = compiled
	return s, nil
}

func (s *TourSystem) builtins() map[string]tengo.Object {
	return map[string]tengo.Object{
		"focus": &tengo.UserFunction{Name: "focus", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string"}
			}
			s.focusByName(name)
			return tengo.UndefinedValue, nil
		}},
		"speed": &tengo.UserFunction{Name: "speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			scale, ok := tengo.ToFloat64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "scale", Expected: "float"}
			}
			s.world.Events().Push(ecs.Event{Kind: ecs.EventSpeedChange, Data: ecs.SpeedChangeEvent{Scale: scale}})
			return tengo.UndefinedValue, nil
		}},
		"reset_view": &tengo.UserFunction{Name: "reset_view", Value: func(args ...tengo.Object) (tengo.Object, error) {
			s.world.Events().Push(ecs.Event{Kind: ecs.EventResetView})
			return tengo.UndefinedValue, nil
		}},
		"finish": &tengo.UserFunction{Name: "finish", Value: func(args ...tengo.Object) (tengo.Object, error) {
			s.finished = true
			return tengo.UndefinedValue, nil
		}},
	}
}

func (s *TourSystem) focusByName(name string) {
	for _, e := range s.world.Query(component.BodyComponent.ID()) {
		body, ok := ecs.Get(s.world, e, component.BodyComponent)
		if !ok || body.Name != name {
			continue
		}
		s.world.Events().Push(ecs.Event{Kind: ecs.EventFocusBody, Data: ecs.FocusBodyEvent{Body: e}})
		return
	}
	log.Printf("tour: no body named %q", name)
}

func (s *TourSystem) Update(w *ecs.World) {
	if s.compiled == nil || s.finished || s.failed {
		return
	}

	s.world = w
	s.elapsed += s.dt

	if err := s.compiled.Set("elapsed", s.elapsed); err != nil {
		log.Printf("tour: set elapsed: %v", err)
		s.failed = true
		return
	}
	if err := s.compiled.Set("state", s.state); err != nil {
		log.Printf("tour: set state: %v", err)
		s.failed = true
		return
	}
	if err := s.compiled.Run(); err != nil {
		log.Printf("tour: script error, disabling tour: %v", err)
		s.failed = true
	}
}
