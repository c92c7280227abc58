//go:build windows

package display

import (
	"unsafe"
)

// HDC CreateDCW(
//   [in] LPCWSTR        pwszDriver,
//   [in] LPCWSTR        pwszDevice,
//   [in] LPCWSTR        pszPort,
//   [in] const DEVMODEW *pdm
// );
func CreateDCW(driver, device *uint16) (DCHandle, error) {
	r1, _, err := createDCW.Call(uintptr(unsafe.Pointer(driver)), uintptr(unsafe.Pointer(device)), 0, 0)
	if r1 == 0 {
		return 0, lastErr(err)
	}
	return DCHandle(r1), nil
}

// BOOL DeleteDC([in] HDC hdc);
func DeleteDC(dc DCHandle) error {
	r1, _, err := deleteDC.Call(uintptr(dc))
	if r1 == 0 {
		return lastErr(err)
	}
	return nil
}

// HCOLORSPACE GetColorSpace(HDC hdc);
func GetColorSpace(dc DCHandle) (ColorSpaceHandle, error) {
	r1, _, err := getColorSpace.Call(uintptr(dc))
	if r1 == 0 {
		return 0, lastErr(err)
	}
	return ColorSpaceHandle(r1), nil
}

// BOOL GetLogColorSpaceW(
//   HCOLORSPACE      hColorSpace,
//   LPLOGCOLORSPACEW lpBuffer,
//   DWORD            nSize
// );
func GetLogColorSpaceW(cs ColorSpaceHandle, lcs *RawColorSpace) error {
	r1, _, err := getLogColorSpaceW.Call(uintptr(cs), uintptr(unsafe.Pointer(lcs)), unsafe.Sizeof(*lcs))
	if r1 == 0 {
		return lastErr(err)
	}
	return nil
}
