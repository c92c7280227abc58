//go:build windows

package display

import "unsafe"

// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-display_devicew
type DISPLAY_DEVICEW struct {
	Cb uint32
	RawDisplayDevice
}

func newDisplayDeviceW() *DISPLAY_DEVICEW {
	d := &DISPLAY_DEVICEW{}
	d.Cb = uint32(unsafe.Sizeof(*d))
	return d
}

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/ns-winuser-monitorinfoexw
type MONITORINFOEXW struct {
	CbSize uint32
	RawMonitorInfo
}

func newMonitorInfoExW() *MONITORINFOEXW {
	mi := &MONITORINFOEXW{}
	mi.CbSize = uint32(unsafe.Sizeof(*mi))
	return mi
}

// MONITORENUMPROC
// BOOL Monitorenumproc(HMONITOR unnamedParam1, HDC unnamedParam2, LPRECT unnamedParam3, LPARAM unnamedParam4)
type monitorEnumFunc func(MonitorHandle) bool
