//go:build (linux || darwin || freebsd) && cgo && !android && !ios

package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"plugin"
)

// Find opens the plugin for module.
func (f PluginFinder) Find(r *Registry, module ModuleRef) error {
	path := f.path(module)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, ErrModuleNotFound)
	}

	p, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("open plugin %s: %w", path, err)
	}

	sym, err := p.Lookup("Register")
	if err != nil {
		return nil
	}
	register, err := pluginRegister(path, sym)
	if err != nil {
		return err
	}
	return register(r)
}
