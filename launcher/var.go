package launcher

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Factory produces an application on first dereference.
type Factory func() (ebiten.Game, error)

// Var is a named value exported by a module. It holds either an application
// or a factory which is evaluated once, on first Deref.
type Var struct {
	name string

	game    ebiten.Game
	factory Factory

	once sync.Once
	err  error
}

// Name returns the unqualified name of the var.
func (v *Var) Name() string {
	return v.name
}

// Bound reports whether the var holds a value or a factory.
func (v *Var) Bound() bool {
	return v.game != nil || v.factory != nil
}

// Deref returns the application held by the var. Every call returns the same
// instance.
func (v *Var) Deref() (ebiten.Game, error) {
	v.once.Do(func() {
		if v.game != nil || v.factory == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				v.err = recovered(r)
			}
		}()

		g, err := v.factory()
		if err != nil {
			v.err = err
			return
		} else if g == nil {
			v.err = fmt.Errorf("factory for %s returned nil", v.name)
			return
		}
		v.game = g
	})
	if v.err != nil {
		return nil, v.err
	} else if v.game == nil {
		return nil, ErrUnbound
	}
	return v.game, nil
}
