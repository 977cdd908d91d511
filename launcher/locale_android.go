//go:build android

package launcher

import (
	"os/exec"
)

func GetLocale() (string, error) {
	out, err := exec.Command("/system/bin/getprop", "persist.sys.locale").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
