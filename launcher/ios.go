package launcher

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Application is a resolved application together with the configuration of
// the shell it runs in.
type Application struct {
	Game   ebiten.Game
	Config Config
}

// Disposer is implemented by applications which release resources when the
// host process exits.
type Disposer interface {
	Dispose()
}

// Delegate creates the application when the iOS application delegate is
// asked for it.
type Delegate struct {
	// Registry defaults to DefaultRegistry.
	Registry *Registry
	// Module and Symbol default to DefaultModule and DefaultSymbol.
	Module ModuleRef
	Symbol Symbol

	// NewApplication constructs the application shell. It defaults to
	// applying the configuration and passing the game to mobile.SetGame.
	NewApplication func(game ebiten.Game, config Config) (*Application, error)

	// Config defaults to DefaultConfig.
	Config *Config

	// Platform names the host in log entries and errors. It defaults to ios.
	Platform string

	// Log defaults to Logger.
	Log *zerolog.Logger

	state State
	app   *Application
	scope *Scope
}

// State returns the lifecycle state of the delegate.
func (d *Delegate) State() State {
	return d.state
}

// CreateApplication resolves the application and wraps it in the platform
// shell. It returns nil when the application could not be created; it never
// panics. Later calls return the result of the first call.
func (d *Delegate) CreateApplication() *Application {
	log := adapterLogger(d.Log, d.platform(), d.module(), d.symbol())
	if d.state != StateNotStarted {
		log.Warn().Stringer("state", d.state).Msg("Application already created")
		return d.app
	}

	d.state = StateResolving
	config := DefaultConfig()
	if d.Config != nil {
		config = *d.Config
	}
	app, err := d.create(config, log)
	if err != nil {
		d.state = StateInert
		log.Error().Err(err).Msg("Failed to create application")
		return nil
	}
	d.app = app
	d.state = StateRunning

	if disposer, ok := app.Game.(Disposer); ok && d.scope != nil {
		d.scope.Defer(disposer.Dispose)
	}
	log.Debug().Msg("Application created")
	return app
}

func (d *Delegate) create(config Config, log zerolog.Logger) (app *Application, err error) {
	defer func() {
		if r := recover(); r != nil {
			app, err = nil, &StartupError{Platform: d.platform(), Err: recovered(r)}
		}
	}()

	game, err := registryOrDefault(d.Registry).Resolve(d.module(), d.symbol())
	if err != nil {
		return nil, err
	}

	if err := localize(game, config.Locale); err != nil {
		log.Warn().Err(err).Msg("Failed to load locale")
	}

	newApplication := d.NewApplication
	if newApplication == nil {
		newApplication = newMobileApplication
	}
	app, err = newApplication(game, config)
	if err != nil {
		return nil, &StartupError{Platform: d.platform(), Err: err}
	} else if app == nil {
		return nil, &StartupError{Platform: d.platform(), Err: ErrUnbound}
	}
	return app, nil
}

func (d *Delegate) platform() string {
	if d.Platform == "" {
		return "ios"
	}
	return d.Platform
}

func (d *Delegate) module() ModuleRef {
	if d.Module == "" {
		return DefaultModule
	}
	return d.Module
}

func (d *Delegate) symbol() Symbol {
	if d.Symbol == "" {
		return DefaultSymbol
	}
	return d.Symbol
}

func newMobileApplication(game ebiten.Game, config Config) (*Application, error) {
	if err := setGame(game); err != nil {
		return nil, err
	}
	config.Apply()
	return &Application{Game: game, Config: config}, nil
}

// RunLoop hands control to the host run loop. It returns when the host
// stops running.
type RunLoop func(args []string, d *Delegate) error

// Main performs the process entry ceremony: it opens a release scope, passes
// args unchanged to run and releases the scope when run returns. The return
// value is the process exit code.
func Main(args []string, d *Delegate, run RunLoop) (code int) {
	scope := NewScope()
	d.scope = scope
	defer scope.Close()

	log := adapterLogger(d.Log, d.platform(), d.module(), d.symbol())
	defer func() {
		if r := recover(); r != nil {
			log.Error().Err(recovered(r)).Msg("Run loop panicked")
			code = 2
		}
	}()

	if err := run(args, d); err != nil {
		log.Error().Err(err).Msg("Run loop failed")
		return 1
	}
	return 0
}
