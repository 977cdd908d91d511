//go:build !android && !windows && !js

package launcher

import "os"

// GetLocale returns the locale set in the environment.
func GetLocale() (string, error) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", nil
}
