package launcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Loader initializes a module by defining its exported vars.
type Loader func(m *Module) error

// Module is a named unit of application code. Its loader runs at most once.
type Module struct {
	name   ModuleRef
	loader Loader

	once sync.Once
	err  error

	mu   sync.RWMutex
	vars map[string]*Var
}

func newModule(name ModuleRef, loader Loader) *Module {
	return &Module{
		name:   name,
		loader: loader,
		vars:   make(map[string]*Var),
	}
}

// Name returns the module reference the module was registered under.
func (m *Module) Name() ModuleRef {
	return m.name
}

// Def exports game under name.
func (m *Module) Def(name string, game ebiten.Game) *Var {
	return m.intern(&Var{name: name, game: game})
}

// DefFunc exports a factory under name. The factory is called on the first
// dereference of the var.
func (m *Module) DefFunc(name string, factory Factory) *Var {
	return m.intern(&Var{name: name, factory: factory})
}

func (m *Module) intern(v *Var) *Var {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[v.name] = v
	return v
}

// Lookup returns the var exported under name.
func (m *Module) Lookup(name string) (*Var, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

// Symbols returns the qualified names of all exported vars, sorted.
func (m *Module) Symbols() []Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	symbols := make([]Symbol, 0, len(m.vars))
	for name := range m.vars {
		symbols = append(symbols, Qualify(m.name, name))
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})
	return symbols
}

// load runs the loader once. A failure is remembered and returned by every
// later call.
func (m *Module) load() error {
	m.once.Do(func() {
		if m.loader == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				m.err = recovered(r)
			}
		}()
		if err := m.loader(m); err != nil {
			m.err = fmt.Errorf("load %s: %w", m.name, err)
		}
	})
	return m.err
}
