package display

import (
	"regexp"
	"strings"
)

// DisplayEnumPath is the HKLM sub-tree holding one key per monitor driver,
// each with one key per monitor instance.
const DisplayEnumPath = `SYSTEM\CurrentControlSet\Enum\DISPLAY`

// DeviceParametersKey is the per monitor key holding the EDID value.
const DeviceParametersKey = "Device Parameters"

// EDIDValueName is the binary value under DeviceParametersKey.
const EDIDValueName = "EDID"

// MonitorIdentity is the (driver, monitor) pair that joins the GDI, SetupAPI
// and registry views of one monitor.
type MonitorIdentity struct {
	DriverID  string `json:"driver_id"`  // e.g. MEI96A2
	MonitorID string `json:"monitor_id"` // e.g. 4&289d1234&0&UID0
}

var (
	// \\?\DISPLAY#MEI96A2#4&289d1234&0&UID0#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}
	interfaceNameRE = regexp.MustCompile(`^\\\\\?\\DISPLAY#([A-Z0-9]+)#([A-Za-z0-9&]+)#\{.*?\}$`)
	// DISPLAY\MEI96A2\4&289d1234&0&UID0
	instanceIDRE = regexp.MustCompile(`^(?i:DISPLAY)\\([A-Z0-9]+)\\([A-Za-z0-9&]+)$`)
	driverSegRE  = regexp.MustCompile(`^[A-Z0-9]+$`)
	monitorSegRE = regexp.MustCompile(`^[A-Za-z0-9&]+$`)
)

// ParseInterfaceName extracts the identity out of a monitor device interface
// name. The GUID part is not validated, only its braces are.
func ParseInterfaceName(name string) (MonitorIdentity, error) {
	m := interfaceNameRE.FindStringSubmatch(name)
	if m == nil {
		return MonitorIdentity{}, &ParseError{Kind: "interface", Raw: name}
	}
	return MonitorIdentity{DriverID: m[1], MonitorID: m[2]}, nil
}

// ParseInstanceID parses a SetupAPI device instance id of a monitor.
func ParseInstanceID(id string) (MonitorIdentity, error) {
	m := instanceIDRE.FindStringSubmatch(id)
	if m == nil {
		return MonitorIdentity{}, &ParseError{Kind: "instance", Raw: id}
	}
	return MonitorIdentity{DriverID: m[1], MonitorID: m[2]}, nil
}

// ParseRegistryPath accepts "<driver>\<monitor>", optionally prefixed with
// DisplayEnumPath and followed by DeviceParametersKey. Matching of the fixed
// parts is case insensitive as the registry is.
func ParseRegistryPath(path string) (MonitorIdentity, error) {
	rest := path
	if len(rest) > len(DisplayEnumPath) && strings.EqualFold(rest[:len(DisplayEnumPath)], DisplayEnumPath) && rest[len(DisplayEnumPath)] == '\\' {
		rest = rest[len(DisplayEnumPath)+1:]
	}
	parts := strings.Split(rest, `\`)
	if len(parts) == 3 && strings.EqualFold(parts[2], DeviceParametersKey) {
		parts = parts[:2]
	}
	if len(parts) != 2 || !driverSegRE.MatchString(parts[0]) || !monitorSegRE.MatchString(parts[1]) {
		return MonitorIdentity{}, &ParseError{Kind: "path", Raw: path}
	}
	return MonitorIdentity{DriverID: parts[0], MonitorID: parts[1]}, nil
}

// Valid reports whether both segments follow the identifier grammar.
func (id MonitorIdentity) Valid() bool {
	return driverSegRE.MatchString(id.DriverID) && monitorSegRE.MatchString(id.MonitorID)
}

// IsZero reports whether id is the zero identity
func (id MonitorIdentity) IsZero() bool {
	return id == MonitorIdentity{}
}

// InterfaceName returns the canonical interface name, with the monitor
// interface class GUID in lowercase as the host prints it.
func (id MonitorIdentity) InterfaceName() string {
	return `\\?\DISPLAY#` + id.DriverID + "#" + id.MonitorID + "#" + GUID_DEVINTERFACE_MONITOR.StringL()
}

// InstanceID returns the SetupAPI device instance id.
func (id MonitorIdentity) InstanceID() string {
	return `DISPLAY\` + id.DriverID + `\` + id.MonitorID
}

// DriverPath is the driver key path relative to HKLM.
func (id MonitorIdentity) DriverPath() string {
	return DisplayEnumPath + `\` + id.DriverID
}

// RegistryPath is the monitor key path relative to HKLM.
func (id MonitorIdentity) RegistryPath() string {
	return id.DriverPath() + `\` + id.MonitorID
}

// ParametersPath is the Device Parameters key path relative to HKLM.
func (id MonitorIdentity) ParametersPath() string {
	return id.RegistryPath() + `\` + DeviceParametersKey
}

// EqualFold compares two identities ignoring case, registry keys and
// SetupAPI instance ids do not agree on casing.
func (id MonitorIdentity) EqualFold(other MonitorIdentity) bool {
	return strings.EqualFold(id.DriverID, other.DriverID) && strings.EqualFold(id.MonitorID, other.MonitorID)
}

// key is the case folded form used for set membership.
func (id MonitorIdentity) key() string {
	return strings.ToUpper(id.DriverID + `\` + id.MonitorID)
}

func (id MonitorIdentity) String() string {
	return id.DriverID + `\` + id.MonitorID
}
