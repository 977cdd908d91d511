package appcore

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"codeberg.org/tslocum/gotext"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/text/language"
)

var backgroundColor = color.RGBA{40, 24, 9, 255}

// Game is a placeholder application which shows that the module was
// resolved and is being driven by the host game loop.
type Game struct {
	ticks    int
	disposed atomic.Bool

	catalog *gotext.Po
}

// NewGame returns a new game.
func NewGame() *Game {
	return &Game{}
}

func (g *Game) Update() error {
	if g.disposed.Load() {
		return ebiten.Termination
	}
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n%s: %d", g.tr("Music Craft"), g.tr("Ticks"), g.ticks))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// SetLocale selects the translation catalog closest to tag. Unsupported
// languages fall back to English.
func (g *Game) SetLocale(tag language.Tag) error {
	catalog, err := loadCatalog(tag)
	if err != nil {
		return err
	}
	g.catalog = catalog
	return nil
}

func (g *Game) tr(s string) string {
	if g.catalog == nil {
		return s
	}
	return g.catalog.Get(s)
}

// Dispose stops the game; the next Update terminates the game loop. It is
// safe to call from any goroutine.
func (g *Game) Dispose() {
	g.disposed.Store(true)
}
