//go:build !js || !wasm

package main

import (
	"flag"

	"codeberg.org/tslocum/musiccraft/launcher"
)

func parseFlags() *options {
	o := &options{}
	flag.StringVar(&o.module, "module", string(launcher.DefaultModule), "Application module")
	flag.StringVar(&o.symbol, "symbol", string(launcher.DefaultSymbol), "Application entry symbol")
	flag.StringVar(&o.config, "config", launcher.DefaultConfigPath(), "Configuration file")
	flag.StringVar(&o.plugins, "plugins", "", "Directory containing application module plugins")
	flag.IntVar(&o.debug, "debug", 0, "Print debug information")
	flag.Parse()

	if o.debug > maxDebug {
		o.debug = maxDebug
	}
	o.args = flag.Args()
	return o
}
