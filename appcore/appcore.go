// Package appcore is the app-core application module. Importing it registers
// the module; nothing runs until a host resolves it.
package appcore

import (
	"codeberg.org/tslocum/musiccraft/launcher"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	Module launcher.ModuleRef = "app-core"
	Entry                     = "main-application"
)

func init() {
	if err := launcher.Register(Module, load); err != nil {
		panic(err)
	}
}

func load(m *launcher.Module) error {
	m.DefFunc(Entry, func() (ebiten.Game, error) {
		return NewGame(), nil
	})
	return nil
}
