//go:build js && wasm

package launcher

import "syscall/js"

func GetLocale() (string, error) {
	return js.Global().Get("navigator").Get("language").String(), nil
}
