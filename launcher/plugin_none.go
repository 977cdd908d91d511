//go:build !(linux || darwin || freebsd) || !cgo || android || ios

package launcher

import "fmt"

// Find always fails; plugins are not supported on this platform.
func (f PluginFinder) Find(r *Registry, module ModuleRef) error {
	return fmt.Errorf("%s: plugins unsupported: %w", f.path(module), ErrModuleNotFound)
}
