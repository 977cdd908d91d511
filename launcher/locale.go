package launcher

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/text/language"
)

// Localizer is implemented by applications which translate their text.
// Adapters call SetLocale with the configured locale before handing the
// application to the game loop.
type Localizer interface {
	SetLocale(tag language.Tag) error
}

func localize(game ebiten.Game, tag language.Tag) error {
	l, ok := game.(Localizer)
	if !ok {
		return nil
	}
	return l.SetLocale(tag)
}
