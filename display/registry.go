package display

import (
	"errors"
	"fmt"
	"log/slog"
)

// registry names are at most 16383 characters
const maxValueNameBuf = 1 << 15

// DeviceParameters opens the Device Parameters key of monitor id. The caller
// closes the returned key.
func (h *Host) DeviceParameters(id MonitorIdentity) (RegistryKey, error) {
	drv, err := h.sys.OpenKey(LocalMachine, id.DriverPath())
	if err != nil {
		return nil, opError("open key", id.DriverPath(), err)
	}
	defer drv.Close()

	mon, err := drv.OpenSubKey(id.MonitorID)
	if err != nil {
		return nil, opError("open key", id.RegistryPath(), err)
	}
	defer mon.Close()

	params, err := mon.OpenSubKey(DeviceParametersKey)
	if err != nil {
		return nil, opError("open key", id.ParametersPath(), err)
	}
	return params, nil
}

// EDID reads the raw EDID block of monitor id.
func (h *Host) EDID(id MonitorIdentity) ([]byte, error) {
	params, err := h.DeviceParameters(id)
	if err != nil {
		return nil, err
	}
	defer params.Close()

	edid, err := params.BinaryValue(EDIDValueName)
	if err != nil {
		return nil, opError("read value", id.ParametersPath()+`\`+EDIDValueName, err)
	}
	slog.Debug("display: read edid", "monitor", id.String(), "size", len(edid), "edid", lazyHex(edid))
	return edid, nil
}

// DeviceEDID returns the EDID of the first monitor attached to adapter d.
// ok is false, with no error, when the host gave d no registry key at all;
// that check happens before any host call.
func (h *Host) DeviceEDID(d DisplayDevice) (edid []byte, ok bool, err error) {
	if !d.HasRegistryKey() {
		return nil, false, nil
	}
	id, err := h.Identity(d)
	if err != nil {
		return nil, false, err
	}
	if edid, err = h.EDID(id); err != nil {
		return nil, false, err
	}
	return edid, true, nil
}

// ValueNames lists the value names of key.
//
// The buffer is sized from the key's longest value name and grown when the
// host answers ERROR_MORE_DATA, the same index is then asked again.
// ERROR_NO_MORE_ITEMS ends the listing.
func ValueNames(key RegistryKey) ([]string, error) {
	maxLen, err := key.MaxValueNameLen()
	if err != nil {
		return nil, opError("query key", "", err)
	}

	buf := make([]uint16, maxLen+1)
	names := make([]string, 0)
	for i := uint32(0); ; {
		n, err := key.EnumValueName(i, buf)
		switch {
		case err == nil:
			names = append(names, DecodeWideString(buf[:min(int(n), len(buf))]))
			i++
		case errors.Is(err, ERROR_MORE_DATA):
			if len(buf) >= maxValueNameBuf {
				return nil, opError("enum value", fmt.Sprint(i), err)
			}
			size := max(2*len(buf), int(n)+1)
			LogTrace("display: growing value name buffer", "index", i, "size", size)
			buf = make([]uint16, size)
		case errors.Is(err, ERROR_NO_MORE_ITEMS):
			return names, nil
		default:
			return nil, opError("enum value", fmt.Sprint(i), err)
		}
	}
}

// DriverValueNames lists the value names of the driver (DIREG_DRV) key of
// the first monitor attached to adapter d. The monitor is found in the
// SetupAPI set of present monitor interfaces by instance id.
func (h *Host) DriverValueNames(d DisplayDevice) ([]string, error) {
	id, err := h.Identity(d)
	if err != nil {
		return nil, err
	}

	set, err := h.sys.MonitorDeviceSet()
	if err != nil {
		return nil, opError("get class devices", GUID_DEVINTERFACE_MONITOR.String(), err)
	}
	defer set.Close()

	for i := 0; ; i++ {
		iid, err := set.InstanceID(i)
		if errors.Is(err, ERROR_NO_MORE_ITEMS) {
			break
		}
		if err != nil {
			return nil, opError("enum device info", fmt.Sprint(i), err)
		}
		inst, err := ParseInstanceID(iid)
		if err != nil || !inst.EqualFold(id) {
			continue
		}

		key, err := set.OpenDriverKey(i)
		if err != nil {
			return nil, opError("open driver key", iid, err)
		}
		defer key.Close()
		return ValueNames(key)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoDeviceForInterface, id.InterfaceName())
}

// entryErr reports whether a SubKeys error concerns that entry only. Any
// other error fails every index of the key.
func entryErr(err error) bool {
	return errors.Is(err, ERROR_MORE_DATA)
}

// monitorsOf walks the monitor sub-keys of an open driver key. Sub-keys
// that can't be listed or opened are logged and skipped, the walk stops on
// the first error that concerns the whole key.
func monitorsOf(drv RegistryKey, driver string) []MonitorIdentity {
	var out []MonitorIdentity
	for name, err := range drv.SubKeys() {
		if err != nil {
			slog.Info("display: skipping monitor key", "driver", driver, "error", err)
			if !entryErr(err) {
				break
			}
			continue
		}
		mon, err := drv.OpenSubKey(name)
		if err != nil {
			slog.Info("display: skipping monitor key", "driver", driver, "monitor", name, "error", err)
			continue
		}
		mon.Close()
		out = append(out, MonitorIdentity{DriverID: driver, MonitorID: name})
	}
	return out
}

// AllMonitors walks the registry display enumeration tree and lists every
// monitor the host has ever seen. Stale and duplicate entries are expected,
// see Snapshot for the ones currently attached.
func (h *Host) AllMonitors() ([]MonitorIdentity, error) {
	root, err := h.sys.OpenKey(LocalMachine, DisplayEnumPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListDisplayDrivers, opError("open key", DisplayEnumPath, err))
	}
	defer root.Close()

	var out []MonitorIdentity
	var errs []error
	drivers := 0
	for driver, err := range root.SubKeys() {
		drivers++
		if err != nil {
			slog.Info("display: skipping driver key", "error", err)
			errs = append(errs, err)
			if !entryErr(err) {
				break
			}
			continue
		}
		drv, err := root.OpenSubKey(driver)
		if err != nil {
			slog.Info("display: skipping driver key", "driver", driver, "error", err)
			errs = append(errs, opError("open key", DisplayEnumPath+`\`+driver, err))
			continue
		}
		out = append(out, monitorsOf(drv, driver)...)
		drv.Close()
	}

	if drivers > 0 && len(errs) == drivers {
		return nil, fmt.Errorf("%w: %w", ErrListDisplayDrivers, errors.Join(errs...))
	}
	return out, nil
}

// MonitorsForDriver lists the monitor keys under one driver key.
func (h *Host) MonitorsForDriver(driverID string) ([]MonitorIdentity, error) {
	path := DisplayEnumPath + `\` + driverID
	drv, err := h.sys.OpenKey(LocalMachine, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListMonitorsForDriver, opError("open key", path, err))
	}
	defer drv.Close()
	return monitorsOf(drv, driverID), nil
}
