//go:build ios

package mobile

import "codeberg.org/tslocum/musiccraft/launcher"

var delegate = &launcher.Delegate{}

func init() {
	delegate.CreateApplication()
}
