//go:build !android && !ios

package launcher

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

var errNoMobileHost = errors.New("no mobile host on this platform")

func setGame(game ebiten.Game) error {
	return errNoMobileHost
}
