//go:build windows

package display

import (
	"golang.org/x/sys/windows"
)

var (
	gdi32             = windows.NewLazySystemDLL("gdi32.dll")
	createDCW         = gdi32.NewProc("CreateDCW")
	deleteDC          = gdi32.NewProc("DeleteDC")
	getColorSpace     = gdi32.NewProc("GetColorSpace")
	getLogColorSpaceW = gdi32.NewProc("GetLogColorSpaceW")
)
