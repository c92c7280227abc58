package display

import (
	"sync"
)

// Host runs every query against one OS adapter. It holds no state besides
// the adapter, each call is a fresh snapshot.
type Host struct {
	sys OS
}

// NewHost returns a Host querying sys. A nil sys selects the platform
// adapter.
func NewHost(sys OS) *Host {
	if sys == nil {
		sys = platformOS()
	}
	return &Host{sys: sys}
}

var (
	defaultOnce sync.Once
	defaultHost *Host
)

// DefaultHost returns the Host bound to the platform adapter. On platforms
// without one every query fails with ErrUnsupported, except the display
// device listings which the host can't fail and which come back empty.
func DefaultHost() *Host {
	defaultOnce.Do(func() {
		defaultHost = NewHost(nil)
	})
	return defaultHost
}

// Monitors lists the virtual monitors of the default host.
func Monitors() ([]Monitor, error) {
	return DefaultHost().Monitors()
}

// PrimaryMonitor returns the primary virtual monitor of the default host.
func PrimaryMonitor() (Monitor, error) {
	return DefaultHost().PrimaryMonitor()
}

// DisplayDevices lists the display adapters of the default host.
func DisplayDevices() ([]DisplayDevice, error) {
	return DefaultHost().DisplayDevices()
}

// PrimaryDisplayDevice returns the primary adapter of the default host.
func PrimaryDisplayDevice() (DisplayDevice, error) {
	return DefaultHost().PrimaryDisplayDevice()
}

// AllMonitors lists every monitor known to the registry of the default host.
func AllMonitors() ([]MonitorIdentity, error) {
	return DefaultHost().AllMonitors()
}

// Intersecting lists the monitors a window covers on the default host.
func Intersecting(w WindowHandle) ([]IntersectingMonitor, error) {
	return DefaultHost().Intersecting(w)
}
