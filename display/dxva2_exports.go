//go:build windows

package display

import (
	"golang.org/x/sys/windows"
)

var (
	dxva2                                   = windows.NewLazySystemDLL("dxva2.dll")
	getNumberOfPhysicalMonitorsFromHMONITOR = dxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	getPhysicalMonitorsFromHMONITOR         = dxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	destroyPhysicalMonitor                  = dxva2.NewProc("DestroyPhysicalMonitor")
)
