//go:build windows

package display

import (
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// lastErr converts the error captured by Proc.Call right after the call.
// Some calls fail without setting last-error, those report ERROR_INVALID_DATA.
func lastErr(err error) error {
	if e, ok := err.(syscall.Errno); ok && e != 0 {
		return Errno(e)
	}
	return ERROR_INVALID_DATA
}

// statusErr converts an LSTATUS style return value.
func statusErr(r1 uintptr) error {
	if r1 == 0 {
		return nil
	}
	return Errno(r1)
}

// BOOL EnumDisplayDevicesW(
//   [in]  LPCWSTR          lpDevice,
//   [in]  DWORD            iDevNum,
//   [out] PDISPLAY_DEVICEW lpDisplayDevice,
//   [in]  DWORD            dwFlags
// );
func EnumDisplayDevicesW(device *uint16, devNum uint32, dd *DISPLAY_DEVICEW, flags uint32) bool {
	r1, _, _ := enumDisplayDevicesW.Call(
		uintptr(unsafe.Pointer(device)),
		uintptr(devNum),
		uintptr(unsafe.Pointer(dd)),
		uintptr(flags))
	return r1 != 0
}

// Callbacks are a finite resource, one is created for the whole process and
// dispatches to the closure registered under dwData.
var (
	monitorEnumOnce sync.Once
	monitorEnumCb   uintptr

	monitorEnumMu   sync.Mutex
	monitorEnumNext uintptr
	monitorEnumFns  = make(map[uintptr]monitorEnumFunc)
)

func monitorEnumProc(hMonitor, hdc, lprcMonitor, dwData uintptr) uintptr {
	monitorEnumMu.Lock()
	fn := monitorEnumFns[dwData]
	monitorEnumMu.Unlock()
	if fn == nil || !fn(MonitorHandle(hMonitor)) {
		return 0
	}
	return 1
}

// BOOL EnumDisplayMonitors(
//   [in] HDC             hdc,
//   [in] LPCRECT         lprcClip,
//   [in] MONITORENUMPROC lpfnEnum,
//   [in] LPARAM          dwData
// );
//
// A false return from fn stops the enumeration, which the host reports as a
// failure; it is not one here.
func EnumDisplayMonitors(hdc DCHandle, fn monitorEnumFunc) error {
	monitorEnumOnce.Do(func() {
		monitorEnumCb = windows.NewCallback(monitorEnumProc)
	})

	stopped := false
	wrapped := func(h MonitorHandle) bool {
		if fn(h) {
			return true
		}
		stopped = true
		return false
	}

	monitorEnumMu.Lock()
	monitorEnumNext++
	id := monitorEnumNext
	monitorEnumFns[id] = wrapped
	monitorEnumMu.Unlock()
	defer func() {
		monitorEnumMu.Lock()
		delete(monitorEnumFns, id)
		monitorEnumMu.Unlock()
	}()

	r1, _, err := enumDisplayMonitors.Call(uintptr(hdc), 0, monitorEnumCb, id)
	if r1 == 0 && !stopped {
		return lastErr(err)
	}
	return nil
}

// BOOL GetMonitorInfoW(
//   [in]  HMONITOR      hMonitor,
//   [out] LPMONITORINFO lpmi
// );
func GetMonitorInfoW(h MonitorHandle, mi *MONITORINFOEXW) error {
	r1, _, err := getMonitorInfoW.Call(uintptr(h), uintptr(unsafe.Pointer(mi)))
	if r1 == 0 {
		return lastErr(err)
	}
	return nil
}

// HDC GetWindowDC([in] HWND hWnd);
func GetWindowDC(w WindowHandle) (DCHandle, error) {
	r1, _, err := getWindowDC.Call(uintptr(w))
	if r1 == 0 {
		return 0, lastErr(err)
	}
	return DCHandle(r1), nil
}

// int ReleaseDC([in] HWND hWnd, [in] HDC hDC);
func ReleaseDC(w WindowHandle, dc DCHandle) error {
	r1, _, err := releaseDC.Call(uintptr(w), uintptr(dc))
	if r1 != 1 {
		return lastErr(err)
	}
	return nil
}
