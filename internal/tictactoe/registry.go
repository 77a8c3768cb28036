package tictactoe

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	EngineClassic = "classic"
	EnginePacked  = "packed"
)

var (
	ErrUnknownEngine   = errors.New("unknown engine")
	ErrDuplicateEngine = errors.New("engine already registered")
	ErrEmptyEngineName = errors.New("engine name is empty")
)

// Factory - builds a fresh engine, ready for the first move.
type Factory func() GameEngine

// Registry maps engine names to factories, in registration order.
// It is populated explicitly by the caller.
type Registry struct {
	factories *orderedmap.OrderedMap[string, Factory]
}

func NewRegistry() *Registry {
	return &Registry{
		factories: orderedmap.New[string, Factory](),
	}
}

// NewDefaultRegistry - returns a new registry holding the bundled engines.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(EngineClassic, func() GameEngine { return NewGameController() })
	registry.MustRegister(EnginePacked, func() GameEngine { return NewPackedEngine() })

	return registry
}

func (that *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyEngineName
	}

	if _, present := that.factories.Get(name); present {
		return fmt.Errorf("%w: %s", ErrDuplicateEngine, name)
	}

	that.factories.Set(name, factory)

	return nil
}

func (that *Registry) MustRegister(name string, factory Factory) {
	if err := that.Register(name, factory); err != nil {
		panic(err)
	}
}

// Create - builds a new instance of the named engine.
func (that *Registry) Create(name string) (GameEngine, error) {
	factory, err := that.Factory(name)
	if err != nil {
		return nil, err
	}

	return factory(), nil
}

func (that *Registry) Factory(name string) (Factory, error) {
	factory, present := that.factories.Get(name)
	if !present {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}

	return factory, nil
}

// Names - returns the engine names in registration order.
func (that *Registry) Names() []string {
	names := make([]string, 0, that.factories.Len())
	for pair := that.factories.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

func (that *Registry) Len() int {
	return that.factories.Len()
}
