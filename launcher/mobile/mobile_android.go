//go:build android

package mobile

import "codeberg.org/tslocum/musiccraft/launcher"

var activity = &launcher.Activity{}

func init() {
	activity.OnCreate(nil)
}
