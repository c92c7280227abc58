package display

import (
	"iter"
)

// Opaque host handles. The core compares them but never dereferences them;
// they are only meaningful for the enumeration call that produced them.
type (
	MonitorHandle         uintptr
	WindowHandle          uintptr
	DCHandle              uintptr
	ColorSpaceHandle      uintptr
	PhysicalMonitorHandle uintptr
)

// RegistryRoot selects a predefined registry hive.
type RegistryRoot uint32

const (
	LocalMachine RegistryRoot = iota + 1
	CurrentUser
)

func (r RegistryRoot) String() string {
	switch r {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	}
	return "HK?"
}

// EnumDisplayDevices flags.
const (
	// EDD_GET_DEVICE_INTERFACE_NAME makes DeviceID carry the device interface
	// name (GUID_DEVINTERFACE_MONITOR) instead of the PnP id.
	EDD_GET_DEVICE_INTERFACE_NAME uint32 = 0x00000001
)

// Buffer capacities of the Win32 records (in UTF-16 code units).
const (
	CCHDEVICENAME                 = 32
	deviceStringLen               = 128
	deviceIDLen                   = 128
	deviceKeyLen                  = 128
	MAX_PATH                      = 260
	physicalMonitorDescriptionLen = 128
)

/*
typedef struct _DISPLAY_DEVICEW {
	DWORD cb;
	WCHAR DeviceName[32];
	WCHAR DeviceString[128];
	DWORD StateFlags;
	WCHAR DeviceID[128];
	WCHAR DeviceKey[128];
} DISPLAY_DEVICEW;
*/

// RawDisplayDevice is one DISPLAY_DEVICEW record, as filled by the host.
type RawDisplayDevice struct {
	DeviceName   [CCHDEVICENAME]uint16
	DeviceString [deviceStringLen]uint16
	StateFlags   uint32
	DeviceID     [deviceIDLen]uint16
	DeviceKey    [deviceKeyLen]uint16
}

/*
typedef struct tagMONITORINFOEXW {
	DWORD cbSize;
	RECT  rcMonitor;
	RECT  rcWork;
	DWORD dwFlags;
	WCHAR szDevice[CCHDEVICENAME];
} MONITORINFOEXW;
*/

// RawMonitorInfo is one MONITORINFOEXW record.
type RawMonitorInfo struct {
	Monitor Rect
	Work    Rect
	Flags   uint32
	Device  [CCHDEVICENAME]uint16
}

// MONITORINFOF_PRIMARY marks the primary display monitor.
const MONITORINFOF_PRIMARY uint32 = 0x00000001

/*
typedef struct tagLOGCOLORSPACEW {
	DWORD         lcsSignature;
	DWORD         lcsVersion;
	DWORD         lcsSize;
	LCSCSTYPE     lcsCSType;
	LCSGAMUTMATCH lcsIntent;
	CIEXYZTRIPLE  lcsEndpoints;
	DWORD         lcsGammaRed;
	DWORD         lcsGammaGreen;
	DWORD         lcsGammaBlue;
	WCHAR         lcsFilename[MAX_PATH];
} LOGCOLORSPACEW;

typedef long FXPT2DOT30;
typedef struct tagCIEXYZ { FXPT2DOT30 ciexyzX, ciexyzY, ciexyzZ; } CIEXYZ;
typedef struct tagCIEXYZTRIPLE { CIEXYZ ciexyzRed, ciexyzGreen, ciexyzBlue; } CIEXYZTRIPLE;
*/

// RawCieXyz holds three FXPT2DOT30 values.
type RawCieXyz struct {
	X, Y, Z int32
}

// RawColorSpace is one LOGCOLORSPACEW record.
type RawColorSpace struct {
	Signature  uint32
	Version    uint32
	Size       uint32
	CSType     uint32
	Intent     int32
	Red        RawCieXyz
	Green      RawCieXyz
	Blue       RawCieXyz
	GammaRed   uint32
	GammaGreen uint32
	GammaBlue  uint32
	Filename   [MAX_PATH]uint16
}

// OS is the raw enumeration boundary. Implementations are thin: they call
// the host and copy results out, nothing more. Errors should be Errno values
// read immediately after the failing call.
type OS interface {
	// EnumDisplayDevices returns the index-th device, or ok=false once index
	// is past the last one. device == "" enumerates adapters, otherwise the
	// monitors attached to that adapter.
	EnumDisplayDevices(device string, index uint32, flags uint32) (dev RawDisplayDevice, ok bool)

	// EnumMonitors calls fn once per virtual monitor, stopping early when fn
	// returns false. dc == 0 enumerates the whole virtual screen, otherwise
	// monitors intersecting the visible region of dc.
	EnumMonitors(dc DCHandle, fn func(MonitorHandle) bool) error
	MonitorInfo(h MonitorHandle) (RawMonitorInfo, error)

	WindowDC(w WindowHandle) (DCHandle, error)
	ReleaseWindowDC(w WindowHandle, dc DCHandle) error
	CreateDisplayDC(device string) (DCHandle, error)
	DeleteDC(dc DCHandle) error

	ColorSpace(dc DCHandle) (ColorSpaceHandle, error)
	LogColorSpace(cs ColorSpaceHandle) (RawColorSpace, error)

	OpenKey(root RegistryRoot, path string) (RegistryKey, error)

	// MonitorDeviceSet opens the SetupAPI information set of present
	// monitor device interfaces.
	MonitorDeviceSet() (DeviceSet, error)

	// PhysicalMonitors returns count packed PHYSICAL_MONITOR records.
	PhysicalMonitors(h MonitorHandle) (raw []byte, count uint32, err error)
	DestroyPhysicalMonitor(h PhysicalMonitorHandle) error
}

// RegistryKey is an open registry key owned by the caller.
type RegistryKey interface {
	OpenSubKey(name string) (RegistryKey, error)

	// SubKeys yields sub-key names lazily. A per-entry failure
	// (ERROR_MORE_DATA) is yielded as an error and enumeration continues
	// with the next index. Any other error is yielded last.
	SubKeys() iter.Seq2[string, error]

	BinaryValue(name string) ([]byte, error)

	// MaxValueNameLen reports the longest value name, in code units, without
	// the terminator.
	MaxValueNameLen() (uint32, error)

	// EnumValueName writes the index-th value name into buf and returns its
	// length. ERROR_MORE_DATA asks for a bigger buf, ERROR_NO_MORE_ITEMS ends
	// the enumeration.
	EnumValueName(index uint32, buf []uint16) (uint32, error)

	Close() error
}

// DeviceSet is a SetupAPI device information set.
type DeviceSet interface {
	// InstanceID returns the device instance id of the index-th member, or
	// ERROR_NO_MORE_ITEMS past the end.
	InstanceID(index int) (string, error)

	// OpenDriverKey opens the DIREG_DRV key of the index-th member.
	OpenDriverKey(index int) (RegistryKey, error)

	Close() error
}
