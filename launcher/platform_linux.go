//go:build linux && !android

package launcher

import (
	"bytes"
	"os"
)

func isSteamDeck() bool {
	buf, err := os.ReadFile("/sys/devices/virtual/dmi/id/board_vendor")
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.ToLower(bytes.TrimSpace(buf)), []byte("valve"))
}

func defaultFullscreen() bool {
	return isSteamDeck() // Default to fullscreen mode on Steam Deck.
}
