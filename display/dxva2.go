//go:build windows

package display

import (
	"unsafe"
)

// _BOOL GetNumberOfPhysicalMonitorsFromHMONITOR(
//   [in]  HMONITOR hMonitor,
//   [out] LPDWORD  pdwNumberOfPhysicalMonitors
// );
func GetNumberOfPhysicalMonitorsFromHMONITOR(h MonitorHandle) (uint32, error) {
	var n uint32
	r1, _, err := getNumberOfPhysicalMonitorsFromHMONITOR.Call(uintptr(h), uintptr(unsafe.Pointer(&n)))
	if r1 == 0 {
		return 0, lastErr(err)
	}
	return n, nil
}

// _BOOL GetPhysicalMonitorsFromHMONITOR(
//   [in]  HMONITOR           hMonitor,
//   [in]  DWORD              dwPhysicalMonitorArraySize,
//   [out] LPPHYSICAL_MONITOR pPhysicalMonitorArray
// );
//
// buf receives count packed PHYSICAL_MONITOR records.
func GetPhysicalMonitorsFromHMONITOR(h MonitorHandle, count uint32, buf []byte) error {
	if len(buf) < int(count)*physicalMonitorStride(ptrSize) || len(buf) == 0 {
		return ERROR_INSUFFICIENT_BUFFER
	}
	r1, _, err := getPhysicalMonitorsFromHMONITOR.Call(uintptr(h), uintptr(count), uintptr(unsafe.Pointer(&buf[0])))
	if r1 == 0 {
		return lastErr(err)
	}
	return nil
}

// _BOOL DestroyPhysicalMonitor([in] HANDLE hMonitor);
func DestroyPhysicalMonitor(h PhysicalMonitorHandle) error {
	r1, _, err := destroyPhysicalMonitor.Call(uintptr(h))
	if r1 == 0 {
		return lastErr(err)
	}
	return nil
}
