package logger

import (
	"fmt"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/core"
)

// Registry owns the state of every logging system defined through
// it. It replaces the per-name globals of macro-era loggers with an
// explicit handle: code reaches a system through the registry it was
// defined in, never through ambient name binding.
//
// A Registry is not synchronized; see the package documentation for
// the concurrency contract.
type Registry struct {
	systems map[string]*System
	action  action.Action
}

// NewRegistry creates an empty registry whose systems emit through
// act. A nil act falls back to action.Default().
func NewRegistry(act action.Action) *Registry {
	if act == nil {
		act = action.Default()
	}
	return &Registry{
		systems: make(map[string]*System),
		action:  act,
	}
}

// Define creates the state cell for a logging system. The initial
// level is clamped into the dynamic range before it is stored.
// Defining the same name twice is an error; it is the only real
// failure mode this package has.
func (r *Registry) Define(name string, initial core.Level) (*System, error) {
	if _, ok := r.systems[name]; ok {
		return nil, fmt.Errorf("logging system %q already defined", name)
	}

	s := &System{
		name:   name,
		level:  core.ClampDynamic(initial),
		action: r.action,
	}
	r.systems[name] = s
	return s, nil
}

// Declare returns the state cell of an already-defined logging
// system. It creates nothing: a matching Define must have run first,
// or Declare fails.
func (r *Registry) Declare(name string) (*System, error) {
	s, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("logging system %q not defined", name)
	}
	return s, nil
}
