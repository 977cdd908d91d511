package launcher

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Activity starts an application when the Android activity is created.
type Activity struct {
	// Registry defaults to DefaultRegistry.
	Registry *Registry
	// Module and Symbol default to DefaultModule and DefaultSymbol.
	Module ModuleRef
	Symbol Symbol

	// Initialize hands the application to the game loop. It defaults to
	// mobile.SetGame.
	Initialize func(game ebiten.Game) error

	// Locale is passed to applications implementing Localizer. It defaults
	// to the system locale.
	Locale language.Tag

	// Log defaults to Logger.
	Log *zerolog.Logger

	state State
	game  ebiten.Game
}

// State returns the lifecycle state of the activity.
func (a *Activity) State() State {
	return a.state
}

// Game returns the running application, or nil.
func (a *Activity) Game() ebiten.Game {
	return a.game
}

// OnCreate resolves the application and starts the game loop. The saved
// instance state is not restored. Failures are logged and leave the activity
// inert; OnCreate never panics.
func (a *Activity) OnCreate(savedState []byte) {
	log := adapterLogger(a.Log, "android", a.module(), a.symbol())
	if a.state != StateNotStarted {
		log.Warn().Stringer("state", a.state).Msg("Activity already created")
		return
	}

	a.state = StateResolving
	game, err := a.start(log)
	if err != nil {
		a.state = StateInert
		log.Error().Err(err).Msg("Failed to start application")
		return
	}
	a.game = game
	a.state = StateRunning
	log.Debug().Msg("Application started")
}

func (a *Activity) start(log zerolog.Logger) (game ebiten.Game, err error) {
	defer func() {
		if r := recover(); r != nil {
			game, err = nil, &StartupError{Platform: "android", Err: recovered(r)}
		}
	}()

	game, err = registryOrDefault(a.Registry).Resolve(a.module(), a.symbol())
	if err != nil {
		return nil, err
	}

	locale := a.Locale
	if locale == language.Und {
		locale = systemLocale()
	}
	if err := localize(game, locale); err != nil {
		log.Warn().Err(err).Msg("Failed to load locale")
	}

	initialize := a.Initialize
	if initialize == nil {
		initialize = setGame
	}
	if err := initialize(game); err != nil {
		return nil, &StartupError{Platform: "android", Err: err}
	}
	return game, nil
}

func (a *Activity) module() ModuleRef {
	if a.Module == "" {
		return DefaultModule
	}
	return a.Module
}

func (a *Activity) symbol() Symbol {
	if a.Symbol == "" {
		return DefaultSymbol
	}
	return a.Symbol
}

func registryOrDefault(r *Registry) *Registry {
	if r == nil {
		return DefaultRegistry
	}
	return r
}

func adapterLogger(l *zerolog.Logger, platform string, module ModuleRef, symbol Symbol) zerolog.Logger {
	if l == nil {
		l = &Logger
	}
	return l.With().
		Str("platform", platform).
		Str("module", string(module)).
		Str("symbol", string(symbol)).
		Logger()
}
