package display

import (
	"fmt"
	"log/slog"
)

// DisplayDevice is one EnumDisplayDevices entry: an adapter, or a monitor
// attached to one. DeviceID and RegistryKey are host owned strings, stable
// for one enumeration pass only.
type DisplayDevice struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	State       StateFlags `json:"state"`
	DeviceID    string     `json:"device_id"`
	RegistryKey string     `json:"registry_key"`

	// first code unit of DeviceKey, zero when the device has no key at all
	keySentinel uint16
}

func newDisplayDevice(raw *RawDisplayDevice) DisplayDevice {
	return DisplayDevice{
		Name:        DecodeWideString(raw.DeviceName[:]),
		Description: DecodeWideString(raw.DeviceString[:]),
		State:       StateFlags(raw.StateFlags),
		DeviceID:    DecodeWideString(raw.DeviceID[:]),
		RegistryKey: DecodeWideString(raw.DeviceKey[:]),
		keySentinel: raw.DeviceKey[0],
	}
}

// HasRegistryKey reports whether the host gave the device a registry key.
func (d DisplayDevice) HasRegistryKey() bool {
	return d.keySentinel != 0
}

func (d DisplayDevice) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", d.Name),
		slog.String("description", d.Description),
		slog.Any("state", lazyState(d.State)),
	)
}

func (h *Host) devices(parent string, flags uint32) []DisplayDevice {
	var devices []DisplayDevice
	for i := uint32(0); ; i++ {
		raw, ok := h.sys.EnumDisplayDevices(parent, i, flags)
		if !ok {
			break
		}
		devices = append(devices, newDisplayDevice(&raw))
	}
	return devices
}

// DisplayDevices lists the display adapters, enumerating until the host
// reports no more entries.
func (h *Host) DisplayDevices() ([]DisplayDevice, error) {
	devices := h.devices("", 0)
	LogTrace("display: display devices", "count", len(devices))
	return devices, nil
}

// PrimaryDisplayDevice returns the adapter holding the primary desktop.
func (h *Host) PrimaryDisplayDevice() (DisplayDevice, error) {
	devices, err := h.DisplayDevices()
	if err != nil {
		return DisplayDevice{}, err
	}
	for _, d := range devices {
		if d.State.Has(StatePrimaryDevice) {
			return d, nil
		}
	}
	return DisplayDevice{}, ErrNoPrimaryDevice
}

// InterfaceName returns the monitor device interface name of the first
// monitor attached to the adapter named by device (a GDI device name such as
// \\.\DISPLAY1).
func (h *Host) InterfaceName(device string) (string, error) {
	raw, ok := h.sys.EnumDisplayDevices(device, 0, EDD_GET_DEVICE_INTERFACE_NAME)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNonexistentInterfaceName, device)
	}
	name := DecodeWideString(raw.DeviceID[:])
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrNonexistentInterfaceName, device)
	}
	return name, nil
}

// Identity resolves and parses the interface name of the adapter's first
// monitor.
func (h *Host) Identity(d DisplayDevice) (MonitorIdentity, error) {
	name, err := h.InterfaceName(d.Name)
	if err != nil {
		return MonitorIdentity{}, err
	}
	return ParseInterfaceName(name)
}

// AttachedMonitor is a monitor level display device with its interface name.
// Identity is zero when the host gave no parsable interface name (mirroring
// pseudo monitors for example).
type AttachedMonitor struct {
	Device        DisplayDevice   `json:"device"`
	InterfaceName string          `json:"interface_name"`
	Identity      MonitorIdentity `json:"identity"`
}

// AttachedMonitors lists every monitor attached to adapter d. The host
// reports no failure for this listing, an adapter it can't enumerate simply
// has no monitors.
func (h *Host) AttachedMonitors(d DisplayDevice) []AttachedMonitor {
	children := h.devices(d.Name, EDD_GET_DEVICE_INTERFACE_NAME)
	out := make([]AttachedMonitor, 0, len(children))
	for _, c := range children {
		am := AttachedMonitor{Device: c, InterfaceName: c.DeviceID}
		if id, err := ParseInterfaceName(c.DeviceID); err != nil {
			slog.Debug("display: attached monitor without identity", "adapter", d.Name, "monitor", c.Name, "error", err)
		} else {
			am.Identity = id
		}
		out = append(out, am)
	}
	return out
}
