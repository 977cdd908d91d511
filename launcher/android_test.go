package launcher

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *zerolog.Logger {
	l := zerolog.New(buf)
	return &l
}

func TestActivityOnCreate(t *testing.T) {
	game := &testGame{}
	r, loads := newTestRegistry(t, game)

	var initialized []ebiten.Game
	var buf bytes.Buffer
	a := &Activity{
		Registry: r,
		Initialize: func(g ebiten.Game) error {
			initialized = append(initialized, g)
			return nil
		},
		Log: bufferLogger(&buf),
	}
	assert.Equal(t, StateNotStarted, a.State())

	a.OnCreate([]byte("saved"))
	assert.Equal(t, StateRunning, a.State())
	assert.Same(t, game, a.Game())
	require.Len(t, initialized, 1)
	assert.Same(t, game, initialized[0])

	// The host creating the activity again does not resolve or initialize
	// a second time.
	a.OnCreate(nil)
	assert.Equal(t, StateRunning, a.State())
	assert.Len(t, initialized, 1)
	assert.Equal(t, 1, *loads)
	assert.Contains(t, buf.String(), "already created")
}

func TestActivityResolveFailure(t *testing.T) {
	r := NewRegistry()

	initialized := 0
	var buf bytes.Buffer
	a := &Activity{
		Registry: r,
		Initialize: func(g ebiten.Game) error {
			initialized++
			return nil
		},
		Log: bufferLogger(&buf),
	}

	assert.NotPanics(t, func() {
		a.OnCreate(nil)
	})
	assert.Equal(t, StateInert, a.State())
	assert.Nil(t, a.Game())
	assert.Zero(t, initialized)
	assert.Contains(t, buf.String(), "Failed to start application")
	assert.Contains(t, buf.String(), `"module":"app-core"`)
}

func TestActivityInitializeFailure(t *testing.T) {
	r, _ := newTestRegistry(t, &testGame{})
	errNoSurface := errors.New("no surface")

	var buf bytes.Buffer
	a := &Activity{
		Registry: r,
		Initialize: func(g ebiten.Game) error {
			return errNoSurface
		},
		Log: bufferLogger(&buf),
	}
	a.OnCreate(nil)

	assert.Equal(t, StateInert, a.State())
	assert.Contains(t, buf.String(), "android startup: no surface")
}

func TestActivityRecoversPanic(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("app-core", func(m *Module) error {
		m.DefFunc("main-application", func() (ebiten.Game, error) {
			return &testGame{}, nil
		})
		return nil
	}))

	var buf bytes.Buffer
	a := &Activity{
		Registry: r,
		Initialize: func(g ebiten.Game) error {
			panic("renderer unavailable")
		},
		Log: bufferLogger(&buf),
	}

	assert.NotPanics(t, func() {
		a.OnCreate(nil)
	})
	assert.Equal(t, StateInert, a.State())
	assert.Contains(t, buf.String(), "renderer unavailable")
}

func TestActivityCustomSymbol(t *testing.T) {
	game := &testGame{}
	r := NewRegistry()
	require.NoError(t, r.Register("tools", func(m *Module) error {
		m.Def("editor", game)
		return nil
	}))

	var initialized ebiten.Game
	a := &Activity{
		Registry: r,
		Module:   "tools",
		Symbol:   "tools/editor",
		Initialize: func(g ebiten.Game) error {
			initialized = g
			return nil
		},
		Log: bufferLogger(&bytes.Buffer{}),
	}
	a.OnCreate(nil)

	assert.Equal(t, StateRunning, a.State())
	assert.Same(t, game, initialized)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not started", StateNotStarted.String())
	assert.Equal(t, "resolving", StateResolving.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "inert", StateInert.String())
	assert.Equal(t, "unknown", State(42).String())
}
