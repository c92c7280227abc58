//go:build windows

package display

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// LSTATUS RegEnumValueW(
//   [in]                HKEY    hKey,
//   [in]                DWORD   dwIndex,
//   [out]               LPWSTR  lpValueName,
//   [in, out]           LPDWORD lpcchValueName,
//                       LPDWORD lpReserved,
//   [out, optional]     LPDWORD lpType,
//   [out, optional]     LPBYTE  lpData,
//   [in, out, optional] LPDWORD lpcbData
// );
//
// Only the name is requested. nameLen is the capacity of name on input, the
// name length without terminator on output.
func RegEnumValueW(key windows.Handle, index uint32, name *uint16, nameLen *uint32) error {
	r1, _, _ := regEnumValueW.Call(
		uintptr(key),
		uintptr(index),
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(nameLen)),
		0, 0, 0, 0)
	return statusErr(r1)
}
