//go:build windows

package display

import (
	"errors"
	"iter"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

func platformOS() OS {
	return windowsOS{}
}

// toErrno keeps the raw code of x/sys errors.
func toErrno(err error) error {
	var e syscall.Errno
	if errors.As(err, &e) {
		return Errno(e)
	}
	return err
}

// windowsOS is the OS adapter backed by user32, gdi32, dxva2, SetupAPI and
// the registry.
type windowsOS struct{}

func (windowsOS) EnumDisplayDevices(device string, index uint32, flags uint32) (RawDisplayDevice, bool) {
	var pdev *uint16
	if device != "" {
		p, err := windows.UTF16PtrFromString(device)
		if err != nil {
			return RawDisplayDevice{}, false
		}
		pdev = p
	}
	dd := newDisplayDeviceW()
	if !EnumDisplayDevicesW(pdev, index, dd, flags) {
		return RawDisplayDevice{}, false
	}
	return dd.RawDisplayDevice, true
}

func (windowsOS) EnumMonitors(dc DCHandle, fn func(MonitorHandle) bool) error {
	return EnumDisplayMonitors(dc, fn)
}

func (windowsOS) MonitorInfo(h MonitorHandle) (RawMonitorInfo, error) {
	mi := newMonitorInfoExW()
	if err := GetMonitorInfoW(h, mi); err != nil {
		return RawMonitorInfo{}, err
	}
	return mi.RawMonitorInfo, nil
}

func (windowsOS) WindowDC(w WindowHandle) (DCHandle, error) {
	return GetWindowDC(w)
}

func (windowsOS) ReleaseWindowDC(w WindowHandle, dc DCHandle) error {
	return ReleaseDC(w, dc)
}

func (windowsOS) CreateDisplayDC(device string) (DCHandle, error) {
	p, err := windows.UTF16PtrFromString(device)
	if err != nil {
		return 0, ERROR_INVALID_PARAMETER
	}
	return CreateDCW(p, p)
}

func (windowsOS) DeleteDC(dc DCHandle) error {
	return DeleteDC(dc)
}

func (windowsOS) ColorSpace(dc DCHandle) (ColorSpaceHandle, error) {
	return GetColorSpace(dc)
}

func (windowsOS) LogColorSpace(cs ColorSpaceHandle) (RawColorSpace, error) {
	var lcs RawColorSpace
	if err := GetLogColorSpaceW(cs, &lcs); err != nil {
		return RawColorSpace{}, err
	}
	return lcs, nil
}

func (windowsOS) OpenKey(root RegistryRoot, path string) (RegistryKey, error) {
	var k registry.Key
	switch root {
	case LocalMachine:
		k = registry.LOCAL_MACHINE
	case CurrentUser:
		k = registry.CURRENT_USER
	default:
		return nil, ERROR_INVALID_PARAMETER
	}
	key, err := registry.OpenKey(k, path, registry.READ)
	if err != nil {
		return nil, toErrno(err)
	}
	return winKey{key}, nil
}

func (windowsOS) MonitorDeviceSet() (DeviceSet, error) {
	guid := windows.GUID(GUID_DEVINTERFACE_MONITOR)
	set, err := windows.SetupDiGetClassDevsEx(&guid, "", 0, windows.DIGCF_PRESENT|windows.DIGCF_DEVICEINTERFACE, 0, "")
	if err != nil {
		return nil, toErrno(err)
	}
	return winDeviceSet{set}, nil
}

func (windowsOS) PhysicalMonitors(h MonitorHandle) ([]byte, uint32, error) {
	count, err := GetNumberOfPhysicalMonitorsFromHMONITOR(h)
	if err != nil || count == 0 {
		return nil, 0, err
	}
	buf := make([]byte, int(count)*physicalMonitorStride(ptrSize))
	if err := GetPhysicalMonitorsFromHMONITOR(h, count, buf); err != nil {
		return nil, 0, err
	}
	return buf, count, nil
}

func (windowsOS) DestroyPhysicalMonitor(h PhysicalMonitorHandle) error {
	return DestroyPhysicalMonitor(h)
}

// winKey is an open registry key.
type winKey struct {
	k registry.Key
}

func (w winKey) OpenSubKey(name string) (RegistryKey, error) {
	key, err := registry.OpenKey(w.k, name, registry.READ)
	if err != nil {
		return nil, toErrno(err)
	}
	return winKey{key}, nil
}

// SubKeys enumerates with RegEnumKeyEx one index at a time, stopping on
// ERROR_NO_MORE_ITEMS or after yielding an error that is not ERROR_MORE_DATA.
func (w winKey) SubKeys() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// key names are at most 255 characters
		var buf [256]uint16
		for i := uint32(0); ; i++ {
			n := uint32(len(buf))
			err := windows.RegEnumKeyEx(windows.Handle(w.k), i, &buf[0], &n, nil, nil, nil, nil)
			if errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
				return
			}
			if err != nil {
				// only an oversized name is specific to index i
				if !yield("", opError("enum key", "", toErrno(err))) || !errors.Is(err, windows.ERROR_MORE_DATA) {
					return
				}
				continue
			}
			if !yield(DecodeWideString(buf[:n]), nil) {
				return
			}
		}
	}
}

func (w winKey) BinaryValue(name string) ([]byte, error) {
	b, _, err := w.k.GetBinaryValue(name)
	if err != nil {
		return nil, toErrno(err)
	}
	return b, nil
}

func (w winKey) MaxValueNameLen() (uint32, error) {
	info, err := w.k.Stat()
	if err != nil {
		return 0, toErrno(err)
	}
	return info.MaxValueNameLen, nil
}

func (w winKey) EnumValueName(index uint32, buf []uint16) (uint32, error) {
	if len(buf) == 0 {
		return 0, ERROR_MORE_DATA
	}
	n := uint32(len(buf))
	if err := RegEnumValueW(windows.Handle(w.k), index, &buf[0], &n); err != nil {
		return n, err
	}
	return n, nil
}

func (w winKey) Close() error {
	return toErrno(w.k.Close())
}

// winDeviceSet is a SetupAPI device information set.
type winDeviceSet struct {
	set windows.DevInfo
}

func (s winDeviceSet) InstanceID(index int) (string, error) {
	data, err := windows.SetupDiEnumDeviceInfo(s.set, index)
	if err != nil {
		return "", toErrno(err)
	}
	id, err := windows.SetupDiGetDeviceInstanceId(s.set, data)
	if err != nil {
		return "", toErrno(err)
	}
	return id, nil
}

func (s winDeviceSet) OpenDriverKey(index int) (RegistryKey, error) {
	data, err := windows.SetupDiEnumDeviceInfo(s.set, index)
	if err != nil {
		return nil, toErrno(err)
	}
	h, err := windows.SetupDiOpenDevRegKey(s.set, data, windows.DICS_FLAG_GLOBAL, 0, windows.DIREG_DRV, windows.KEY_READ)
	if err != nil {
		return nil, toErrno(err)
	}
	return winKey{registry.Key(h)}, nil
}

func (s winDeviceSet) Close() error {
	return toErrno(s.set.Close())
}
