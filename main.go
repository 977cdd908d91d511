package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "codeberg.org/tslocum/musiccraft/appcore"
	"codeberg.org/tslocum/musiccraft/launcher"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const maxDebug = 1

type options struct {
	module  string
	symbol  string
	config  string
	plugins string
	debug   int
	args    []string
}

func main() {
	o := parseFlags()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if o.debug > 0 {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config, err := launcher.LoadConfig(o.config)
	if err != nil {
		launcher.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if o.plugins != "" {
		launcher.DefaultRegistry.SetFinder(launcher.PluginFinder{Dir: o.plugins})
	}

	d := &launcher.Delegate{
		Module:         launcher.ModuleRef(o.module),
		Symbol:         launcher.Symbol(o.symbol),
		NewApplication: newDesktopApplication,
		Config:         &config,
		Platform:       "desktop",
	}
	os.Exit(launcher.Main(o.args, d, runDesktop))
}

func newDesktopApplication(game ebiten.Game, config launcher.Config) (*launcher.Application, error) {
	config.Apply()
	config.ApplyWindow()
	return &launcher.Application{Game: game, Config: config}, nil
}

func runDesktop(_ []string, d *launcher.Delegate) error {
	app := d.CreateApplication()
	if app == nil {
		return errors.New("no application to run")
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		disposer, ok := app.Game.(launcher.Disposer)
		if !ok {
			os.Exit(0)
		}
		disposer.Dispose()
	}()

	op := &ebiten.RunGameOptions{
		X11ClassName:    "musiccraft",
		X11InstanceName: "musiccraft",
	}
	return ebiten.RunGameWithOptions(app.Game, op)
}
