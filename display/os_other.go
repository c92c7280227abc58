//go:build !windows

package display

func platformOS() OS {
	return unsupportedOS{}
}

// unsupportedOS fails every query with ErrUnsupported. Device enumeration
// has no error to report and is just empty.
type unsupportedOS struct{}

func (unsupportedOS) EnumDisplayDevices(string, uint32, uint32) (RawDisplayDevice, bool) {
	return RawDisplayDevice{}, false
}

func (unsupportedOS) EnumMonitors(DCHandle, func(MonitorHandle) bool) error {
	return ErrUnsupported
}

func (unsupportedOS) MonitorInfo(MonitorHandle) (RawMonitorInfo, error) {
	return RawMonitorInfo{}, ErrUnsupported
}

func (unsupportedOS) WindowDC(WindowHandle) (DCHandle, error) { return 0, ErrUnsupported }

func (unsupportedOS) ReleaseWindowDC(WindowHandle, DCHandle) error { return ErrUnsupported }

func (unsupportedOS) CreateDisplayDC(string) (DCHandle, error) { return 0, ErrUnsupported }

func (unsupportedOS) DeleteDC(DCHandle) error { return ErrUnsupported }

func (unsupportedOS) ColorSpace(DCHandle) (ColorSpaceHandle, error) { return 0, ErrUnsupported }

func (unsupportedOS) LogColorSpace(ColorSpaceHandle) (RawColorSpace, error) {
	return RawColorSpace{}, ErrUnsupported
}

func (unsupportedOS) OpenKey(RegistryRoot, string) (RegistryKey, error) { return nil, ErrUnsupported }

func (unsupportedOS) MonitorDeviceSet() (DeviceSet, error) { return nil, ErrUnsupported }

func (unsupportedOS) PhysicalMonitors(MonitorHandle) ([]byte, uint32, error) {
	return nil, 0, ErrUnsupported
}

func (unsupportedOS) DestroyPhysicalMonitor(PhysicalMonitorHandle) error { return ErrUnsupported }
