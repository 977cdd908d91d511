// Package mobile is bound with ebitenmobile to produce the Android and iOS
// libraries. The platform hook runs when the host loads the library.
package mobile

import (
	_ "codeberg.org/tslocum/musiccraft/appcore"
)

// Dummy is a dummy exported function.
//
// gomobile will only compile packages that include at least one exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
