package launcher

import (
	"fmt"
	"path/filepath"
)

// PluginFinder finds modules built as Go plugins named <module>.so in Dir.
//
// A plugin either registers its module with DefaultRegistry from init, or
// exports
//
//	func Register(r *launcher.Registry) error
//
// which is called with the registry being searched.
type PluginFinder struct {
	Dir string
}

func (f PluginFinder) path(module ModuleRef) string {
	return filepath.Join(f.Dir, filepath.Base(string(module))+".so")
}

// pluginRegister returns the Register function exported by the plugin at
// path. Exported funcs are looked up as values and exported vars as pointers.
func pluginRegister(path string, sym interface{}) (func(*Registry) error, error) {
	switch register := sym.(type) {
	case func(*Registry) error:
		return register, nil
	case *func(*Registry) error:
		if register != nil && *register != nil {
			return *register, nil
		}
	}
	return nil, fmt.Errorf("plugin %s: Register has type %T", path, sym)
}
