package launcher

import (
	"errors"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resolve loads module and dereferences symbol within it. The module is
// loaded at most once per registry; resolving the same symbol again returns
// the same application.
func (r *Registry) Resolve(module ModuleRef, symbol Symbol) (ebiten.Game, error) {
	ns, name := symbol.Split()
	switch {
	case module == "" || name == "",
		ns == "" && strings.ContainsRune(string(symbol), '/'),
		ns != "" && ns != module:
		return nil, &ResolveError{Kind: ErrInvalidReference, Module: module, Symbol: symbol}
	}

	m, err := r.Load(module)
	if err != nil {
		var loadErr *ResolveError
		if errors.As(err, &loadErr) {
			return nil, &ResolveError{Kind: loadErr.Kind, Module: loadErr.Module, Symbol: symbol, Err: loadErr.Err}
		}
		return nil, err
	}

	v, ok := m.Lookup(name)
	if !ok {
		return nil, &ResolveError{Kind: ErrSymbolNotFound, Module: module, Symbol: symbol}
	}

	game, err := v.Deref()
	if err != nil {
		if errors.Is(err, ErrUnbound) {
			err = nil
		}
		return nil, &ResolveError{Kind: ErrUnbound, Module: module, Symbol: symbol, Err: err}
	}
	return game, nil
}
