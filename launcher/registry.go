// Package launcher starts an application module inside a host lifecycle.
//
// Application modules register themselves by name. Hosts only know a module
// name and the name of the var holding the application, and resolve the
// application through a Registry when the operating system asks for it.
package launcher

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultModule ModuleRef = "app-core"
	DefaultSymbol Symbol    = "app-core/main-application"
)

// ModuleRef names an application module.
type ModuleRef string

// Symbol names a var exported by a module, either qualified as module/name
// or unqualified.
type Symbol string

// Qualify returns the qualified symbol for name in module.
func Qualify(module ModuleRef, name string) Symbol {
	return Symbol(string(module) + "/" + name)
}

// Split returns the namespace and name of a symbol. The namespace is empty
// for unqualified symbols.
func (s Symbol) Split() (ModuleRef, string) {
	i := strings.LastIndexByte(string(s), '/')
	if i == -1 {
		return "", string(s)
	}
	return ModuleRef(s[:i]), string(s[i+1:])
}

// Finder locates modules which are not registered yet. A successful Find
// registers the module with the registry passed to it.
type Finder interface {
	Find(r *Registry, module ModuleRef) error
}

// Registry is a lookup table of application modules.
type Registry struct {
	mu      sync.Mutex
	modules map[ModuleRef]*Module
	finder  Finder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[ModuleRef]*Module),
	}
}

// DefaultRegistry is used by Register, Resolve and the platform adapters
// when no registry is specified.
var DefaultRegistry = NewRegistry()

// Register adds a module to the default registry.
func Register(module ModuleRef, loader Loader) error {
	return DefaultRegistry.Register(module, loader)
}

// Resolve resolves an application from the default registry.
func Resolve(module ModuleRef, symbol Symbol) (ebiten.Game, error) {
	return DefaultRegistry.Resolve(module, symbol)
}

// Register records a module. The loader runs the first time the module is
// loaded, not here.
func (r *Registry) Register(module ModuleRef, loader Loader) error {
	if module == "" {
		return fmt.Errorf("register: %w", ErrInvalidReference)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[module]; ok {
		return fmt.Errorf("register: module %q already registered", module)
	}
	r.modules[module] = newModule(module, loader)
	return nil
}

// SetFinder sets the finder consulted for unregistered modules.
func (r *Registry) SetFinder(f Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finder = f
}

// Modules returns the names of all registered modules, sorted.
func (r *Registry) Modules() []ModuleRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]ModuleRef, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
	return names
}

func (r *Registry) module(name ModuleRef) (*Module, Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modules[name], r.finder
}

// Load returns the named module, running its loader if it has not run yet.
func (r *Registry) Load(module ModuleRef) (*Module, error) {
	if module == "" {
		return nil, &ResolveError{Kind: ErrInvalidReference, Module: module}
	}

	m, finder := r.module(module)
	if m == nil && finder != nil {
		err := finder.Find(r, module)
		// A concurrent Load may have registered the module first.
		m, _ = r.module(module)
		if m == nil && err != nil {
			if errors.Is(err, ErrModuleNotFound) {
				err = nil
			}
			return nil, &ResolveError{Kind: ErrModuleNotFound, Module: module, Err: err}
		}
	}
	if m == nil {
		return nil, &ResolveError{Kind: ErrModuleNotFound, Module: module}
	}

	if err := m.load(); err != nil {
		return nil, &ResolveError{Kind: ErrModuleInit, Module: module, Err: err}
	}
	return m, nil
}
