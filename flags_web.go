//go:build js && wasm

package main

import "codeberg.org/tslocum/musiccraft/launcher"

func parseFlags() *options {
	return &options{
		module: string(launcher.DefaultModule),
		symbol: string(launcher.DefaultSymbol),
	}
}
