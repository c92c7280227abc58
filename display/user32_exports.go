//go:build windows

package display

import (
	"golang.org/x/sys/windows"
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	enumDisplayDevicesW = user32.NewProc("EnumDisplayDevicesW")
	enumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	getMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	getWindowDC         = user32.NewProc("GetWindowDC")
	releaseDC           = user32.NewProc("ReleaseDC")
)
