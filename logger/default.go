package logger

import "github.com/emc2/mcl/core"

// defaultRegistry backs the package-level functions. It emits through
// action.Default(), so urgent messages reach stderr and the rest
// reach stdout.
var defaultRegistry = NewRegistry(nil)

// Default returns the registry used by the package-level functions.
func Default() *Registry {
	return defaultRegistry
}

// SetDefault replaces the registry used by the package-level
// functions. Like everything else here it assumes single-threaded
// setup; swap registries before any logging happens.
func SetDefault(r *Registry) {
	defaultRegistry = r
}

// Define creates a logging system in the default registry.
func Define(name string, initial core.Level) (*System, error) {
	return defaultRegistry.Define(name, initial)
}

// Declare returns an already-defined system from the default registry.
func Declare(name string) (*System, error) {
	return defaultRegistry.Declare(name)
}

// MustDefine is like Define but panics on a duplicate name. It
// supports the file-scope definition idiom:
//
//	var frontendLog = logger.MustDefine("frontend", logger.ErrorLevel)
func MustDefine(name string, initial core.Level) *System {
	s, err := Define(name, initial)
	if err != nil {
		panic(err)
	}
	return s
}

// MustDeclare is like Declare but panics when the system was never
// defined.
func MustDeclare(name string) *System {
	s, err := Declare(name)
	if err != nil {
		panic(err)
	}
	return s
}
