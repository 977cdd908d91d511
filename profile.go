//go:build profile

package main

import (
	"net/http"
	_ "net/http/pprof"

	"codeberg.org/tslocum/musiccraft/launcher"
)

func serveProfile() {
	err := http.ListenAndServe("localhost:8880", nil)
	launcher.Logger.Fatal().Err(err).Msg("Profiling server stopped")
}

func init() {
	go serveProfile()
}
