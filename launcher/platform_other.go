//go:build !linux || android

package launcher

func defaultFullscreen() bool {
	return false
}
