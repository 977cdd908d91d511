//go:build windows

package launcher

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The locale lookup below is based on https://github.com/jeandeaual/go-locale
// (MIT License, Copyright (c) 2020 Alexis Jeandeau).

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH.
// See https://docs.microsoft.com/en-us/windows/win32/intl/locale-name-constants.
const localeNameMaxLength uint32 = 85

var kernel32 = windows.NewLazySystemDLL("kernel32.dll")

func localeFromProc(name string) (string, error) {
	proc := kernel32.NewProc(name)
	if err := proc.Find(); err != nil {
		return "", fmt.Errorf("could not find the %s proc in kernel32: %w", name, err)
	}

	buffer := make([]uint16, localeNameMaxLength)

	// Both procs return the length of the locale name, or 0 if not found.
	ret, _, err := proc.Call(uintptr(unsafe.Pointer(&buffer[0])), uintptr(localeNameMaxLength))
	if ret == 0 {
		return "", fmt.Errorf("locale not found when calling %s: %v", name, err)
	}
	return windows.UTF16ToString(buffer), nil
}

// GetLocale retrieves the IETF BCP 47 language tag set on the system.
func GetLocale() (string, error) {
	var err error
	for _, name := range [...]string{"GetUserDefaultLocaleName", "GetSystemDefaultLocaleName"} {
		var locale string
		locale, err = localeFromProc(name)
		if err == nil {
			return locale, nil
		}
	}
	return "", fmt.Errorf("cannot determine locale: %w", err)
}
