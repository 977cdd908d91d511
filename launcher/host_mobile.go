//go:build android || ios

package launcher

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func setGame(game ebiten.Game) error {
	mobile.SetGame(game)
	return nil
}
