//go:build windows

package display

import (
	"golang.org/x/sys/windows"
)

var (
	advapi32      = windows.NewLazySystemDLL("advapi32.dll")
	regEnumValueW = advapi32.NewProc("RegEnumValueW")
)
