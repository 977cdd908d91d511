package launcher

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrapApplication(game ebiten.Game, config Config) (*Application, error) {
	return &Application{Game: game, Config: config}, nil
}

func TestDelegateCreateApplication(t *testing.T) {
	game := &testGame{}
	r, loads := newTestRegistry(t, game)

	d := &Delegate{
		Registry:       r,
		NewApplication: wrapApplication,
		Log:            bufferLogger(&bytes.Buffer{}),
	}

	app := d.CreateApplication()
	require.NotNil(t, app)
	assert.Same(t, game, app.Game)
	assert.Equal(t, DefaultConfig(), app.Config)
	assert.Equal(t, StateRunning, d.State())

	assert.Same(t, app, d.CreateApplication())
	assert.Equal(t, 1, *loads)
}

func TestDelegateCustomConfig(t *testing.T) {
	r, _ := newTestRegistry(t, &testGame{})

	config := DefaultConfig()
	config.TPS = 30
	d := &Delegate{
		Registry:       r,
		NewApplication: wrapApplication,
		Config:         &config,
		Log:            bufferLogger(&bytes.Buffer{}),
	}

	app := d.CreateApplication()
	require.NotNil(t, app)
	assert.Equal(t, 30, app.Config.TPS)
}

func TestDelegateResolveFailure(t *testing.T) {
	var buf bytes.Buffer
	d := &Delegate{
		Registry:       NewRegistry(),
		NewApplication: wrapApplication,
		Log:            bufferLogger(&buf),
	}

	var app *Application
	assert.NotPanics(t, func() {
		app = d.CreateApplication()
	})
	assert.Nil(t, app)
	assert.Equal(t, StateInert, d.State())
	assert.Contains(t, buf.String(), "module not found")

	assert.Nil(t, d.CreateApplication())
}

func TestDelegateConstructorFailure(t *testing.T) {
	r, _ := newTestRegistry(t, &testGame{})

	tests := []struct {
		name           string
		newApplication func(ebiten.Game, Config) (*Application, error)
		message        string
	}{
		{
			name: "error",
			newApplication: func(ebiten.Game, Config) (*Application, error) {
				return nil, errors.New("no window")
			},
			message: "ios startup: no window",
		},
		{
			name: "nil application",
			newApplication: func(ebiten.Game, Config) (*Application, error) {
				return nil, nil
			},
			message: "ios startup",
		},
		{
			name: "panic",
			newApplication: func(ebiten.Game, Config) (*Application, error) {
				panic("metal unavailable")
			},
			message: "metal unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			d := &Delegate{
				Registry:       r,
				NewApplication: tt.newApplication,
				Log:            bufferLogger(&buf),
			}
			assert.Nil(t, d.CreateApplication())
			assert.Equal(t, StateInert, d.State())
			assert.Contains(t, buf.String(), tt.message)
		})
	}
}

func TestMainReleasesScope(t *testing.T) {
	game := &testGame{}
	r, _ := newTestRegistry(t, game)
	d := &Delegate{
		Registry:       r,
		NewApplication: wrapApplication,
		Log:            bufferLogger(&bytes.Buffer{}),
	}

	args := []string{"-NSDocumentRevisionsDebugMode", "YES"}
	var runArgs []string
	code := Main(args, d, func(args []string, d *Delegate) error {
		runArgs = args
		require.NotNil(t, d.CreateApplication())
		assert.Zero(t, game.disposed)
		return nil
	})

	assert.Equal(t, 0, code)
	assert.Equal(t, args, runArgs)
	assert.Equal(t, 1, game.disposed)
}

func TestMainRunLoopFailure(t *testing.T) {
	var buf bytes.Buffer
	d := &Delegate{
		Registry: NewRegistry(),
		Log:      bufferLogger(&buf),
	}

	code := Main(nil, d, func([]string, *Delegate) error {
		return errors.New("run loop exited")
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "run loop exited")

	code = Main(nil, d, func([]string, *Delegate) error {
		panic("run loop crashed")
	})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "run loop crashed")
}
