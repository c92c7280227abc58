package display

import (
	"iter"
	"strings"

	"github.com/tekert/golang-display/display/pkg/utf16f"
)

// fakeNode is one key of an in-memory registry tree.
type fakeNode struct {
	name       string
	children   []*fakeNode
	values     map[string][]byte
	valueNames []string
	// open fails with ERROR_ACCESS_DENIED
	denied bool
	// number of unreadable entries SubKeys yields before the real ones
	enumErrs int
	// when set SubKeys fails with it on every index, as a bad handle does
	enumFail error
	// SubKeys yields consumed by the caller
	enumYields int
	// overrides the reported longest value name
	maxNameLen *uint32
}

func newFakeTree() *fakeNode {
	return &fakeNode{}
}

func (n *fakeNode) child(name string) *fakeNode {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

// add creates every missing key of a backslash separated path.
func (n *fakeNode) add(path string) *fakeNode {
	cur := n
	for _, seg := range strings.Split(path, `\`) {
		next := cur.child(seg)
		if next == nil {
			next = &fakeNode{name: seg}
			cur.children = append(cur.children, next)
		}
		cur = next
	}
	return cur
}

func (n *fakeNode) setValue(name string, data []byte) *fakeNode {
	if n.values == nil {
		n.values = make(map[string][]byte)
	}
	n.values[name] = data
	n.valueNames = append(n.valueNames, name)
	return n
}

type fakeKey struct {
	node *fakeNode
	os   *fakeOS
}

func (f *fakeOS) openNode(from *fakeNode, path string) (RegistryKey, error) {
	cur := from
	for _, seg := range strings.Split(path, `\`) {
		cur = cur.child(seg)
		if cur == nil {
			return nil, ERROR_FILE_NOT_FOUND
		}
		if cur.denied {
			return nil, ERROR_ACCESS_DENIED
		}
	}
	f.opened++
	return &fakeKey{node: cur, os: f}, nil
}

func (k *fakeKey) OpenSubKey(name string) (RegistryKey, error) {
	return k.os.openNode(k.node, name)
}

func (k *fakeKey) SubKeys() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if k.node.enumFail != nil {
			// bounded so a caller that never stops fails instead of hanging
			for range 1000 {
				k.node.enumYields++
				if !yield("", opError("enum key", "", k.node.enumFail)) {
					return
				}
			}
			return
		}
		for i := 0; i < k.node.enumErrs; i++ {
			k.node.enumYields++
			if !yield("", opError("enum key", "", ERROR_MORE_DATA)) {
				return
			}
		}
		for _, c := range k.node.children {
			if !yield(c.name, nil) {
				return
			}
		}
	}
}

func (k *fakeKey) BinaryValue(name string) ([]byte, error) {
	v, ok := k.node.values[name]
	if !ok {
		return nil, ERROR_FILE_NOT_FOUND
	}
	return v, nil
}

func (k *fakeKey) MaxValueNameLen() (uint32, error) {
	if k.node.maxNameLen != nil {
		return *k.node.maxNameLen, nil
	}
	var m uint32
	for _, n := range k.node.valueNames {
		m = max(m, uint32(len(utf16f.Encode(n, 1<<15))-1))
	}
	return m, nil
}

func (k *fakeKey) EnumValueName(index uint32, buf []uint16) (uint32, error) {
	if int(index) >= len(k.node.valueNames) {
		return 0, ERROR_NO_MORE_ITEMS
	}
	name := utf16f.Encode(k.node.valueNames[index], 1<<15)
	if len(name) > len(buf) {
		k.os.moreData++
		return 0, ERROR_MORE_DATA
	}
	copy(buf, name)
	return uint32(len(name) - 1), nil
}

func (k *fakeKey) Close() error {
	k.os.closed++
	return nil
}

type fakeDeviceSet struct {
	os *fakeOS
}

func (s *fakeDeviceSet) InstanceID(index int) (string, error) {
	if s.os.instanceErr != nil {
		s.os.instanceCalls++
		if s.os.instanceCalls > 1000 {
			return "", ERROR_NO_MORE_ITEMS
		}
		return "", s.os.instanceErr
	}
	if index >= len(s.os.instances) {
		return "", ERROR_NO_MORE_ITEMS
	}
	return s.os.instances[index], nil
}

func (s *fakeDeviceSet) OpenDriverKey(index int) (RegistryKey, error) {
	n, ok := s.os.driverKeys[index]
	if !ok {
		return nil, ERROR_FILE_NOT_FOUND
	}
	s.os.opened++
	return &fakeKey{node: n, os: s.os}, nil
}

func (s *fakeDeviceSet) Close() error {
	s.os.setClosed++
	return nil
}

// fakeChild is a monitor device attached to an adapter.
type fakeChild struct {
	name  string
	desc  string
	state StateFlags
	pnpID string
	iface string
}

// fakeOS simulates a desktop. Handles are arbitrary distinct tokens.
type fakeOS struct {
	adapters []RawDisplayDevice
	children map[string][]fakeChild

	monitors []MonitorHandle
	infos    map[MonitorHandle]RawMonitorInfo
	infoErrs map[MonitorHandle]error
	enumErr  error

	windowDCs  map[WindowHandle]DCHandle
	dcMonitors map[DCHandle][]MonitorHandle
	released   []DCHandle

	deviceDCs map[string]DCHandle
	dcSpaces  map[DCHandle]ColorSpaceHandle
	spaces    map[ColorSpaceHandle]RawColorSpace
	deleted   []DCHandle

	hklm       *fakeNode
	instances  []string
	driverKeys map[int]*fakeNode
	// when set every InstanceID call fails with it
	instanceErr   error
	instanceCalls int

	physical  map[MonitorHandle][]byte
	destroyed []PhysicalMonitorHandle

	opened, closed, setClosed, moreData int
}

func rawDevice(name, desc string, state StateFlags, id, key string) RawDisplayDevice {
	var r RawDisplayDevice
	encodeWide(r.DeviceName[:], name)
	encodeWide(r.DeviceString[:], desc)
	r.StateFlags = uint32(state)
	encodeWide(r.DeviceID[:], id)
	encodeWide(r.DeviceKey[:], key)
	return r
}

func rawMonitorInfo(name string, rect Rect, primary bool) RawMonitorInfo {
	var mi RawMonitorInfo
	mi.Monitor = rect
	mi.Work = rect
	mi.Work.Bottom -= 40
	if primary {
		mi.Flags = MONITORINFOF_PRIMARY
	}
	encodeWide(mi.Device[:], name)
	return mi
}

const (
	testVideoKey = `\Registry\Machine\System\CurrentControlSet\Control\Video\{5EA0E3B8-0B1A-11EF-9C3D-8C1645B2D8F1}\0000`

	testIface1 = `\\?\DISPLAY#MEI96A2#4&289d1234&0&UID0#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`
	testIface2 = `\\?\DISPLAY#DELA0B1#5&1f2e3d&0&UID4353#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`

	hMon1 MonitorHandle = 0x10001
	hMon2 MonitorHandle = 0x10003
	hWnd  WindowHandle  = 0x50a2
	hWDC  DCHandle      = 0x9001
)

var (
	testEDID1 = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x34, 0xa9, 0xa2, 0x96}
	testEDID2 = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x10, 0xac, 0xb1, 0xa0}
)

// newFakeOS returns a two monitor desktop: \\.\DISPLAY1 (primary, MEI96A2),
// \\.\DISPLAY2 (DELA0B1) left of it at negative x, and a detached
// \\.\DISPLAY3 without registry key. The registry also holds a stale
// GSM5B7F monitor and a denied ACR0001 driver.
func newFakeOS() *fakeOS {
	f := &fakeOS{
		adapters: []RawDisplayDevice{
			rawDevice(`\\.\DISPLAY1`, "Intel(R) UHD Graphics 620", StateAttachedToDesktop|StatePrimaryDevice, `PCI\VEN_8086&DEV_5917`, testVideoKey),
			rawDevice(`\\.\DISPLAY2`, "Intel(R) UHD Graphics 620", StateAttachedToDesktop, `PCI\VEN_8086&DEV_5917`, testVideoKey[:len(testVideoKey)-1]+"1"),
			rawDevice(`\\.\DISPLAY3`, "Intel(R) UHD Graphics 620", 0, `PCI\VEN_8086&DEV_5917`, ""),
		},
		children: map[string][]fakeChild{
			`\\.\DISPLAY1`: {{
				name: `\\.\DISPLAY1\Monitor0`, desc: "Generic PnP Monitor",
				state: StateActive | StateAttached, pnpID: `MONITOR\MEI96A2\{4d36e96e-e325-11ce-bfc1-08002be10318}\0000`,
				iface: testIface1,
			}},
			`\\.\DISPLAY2`: {{
				name: `\\.\DISPLAY2\Monitor0`, desc: "DELL U2415",
				state: StateActive | StateAttached, pnpID: `MONITOR\DELA0B1\{4d36e96e-e325-11ce-bfc1-08002be10318}\0001`,
				iface: testIface2,
			}},
		},
		monitors: []MonitorHandle{hMon1, hMon2},
		infos: map[MonitorHandle]RawMonitorInfo{
			hMon1: rawMonitorInfo(`\\.\DISPLAY1`, Rect{0, 0, 1920, 1080}, true),
			hMon2: rawMonitorInfo(`\\.\DISPLAY2`, Rect{-1920, 0, 0, 1200}, false),
		},
		infoErrs:   map[MonitorHandle]error{},
		windowDCs:  map[WindowHandle]DCHandle{hWnd: hWDC},
		dcMonitors: map[DCHandle][]MonitorHandle{hWDC: {hMon1}},
		deviceDCs:  map[string]DCHandle{`\\.\DISPLAY1`: 0x7001},
		dcSpaces:   map[DCHandle]ColorSpaceHandle{0x7001: 0x8001},
		spaces:     map[ColorSpaceHandle]RawColorSpace{0x8001: sRGBSpace()},
		hklm:       newFakeTree(),
		instances: []string{
			`DISPLAY\DELA0B1\5&1F2E3D&0&UID4353`,
			`DISPLAY\MEI96A2\4&289D1234&0&UID0`,
		},
		physical: map[MonitorHandle][]byte{},
	}

	enum := f.hklm.add(DisplayEnumPath)
	enum.add(`MEI96A2\4&289d1234&0&UID0\` + DeviceParametersKey).setValue(EDIDValueName, testEDID1)
	enum.add(`DELA0B1\5&1f2e3d&0&UID4353\` + DeviceParametersKey).setValue(EDIDValueName, testEDID2)
	enum.add(`GSM5B7F\4&10a2b3c&0&UID1\` + DeviceParametersKey).setValue(EDIDValueName, testEDID2)
	enum.add(`ACR0001`).denied = true

	drv0 := &fakeNode{name: "0001"}
	drv0.setValue("DriverDesc", []byte("DELL U2415")).setValue("MatchingDeviceId", nil)
	drv1 := &fakeNode{name: "0000"}
	drv1.setValue("DriverDesc", nil).setValue("InfPath", nil).setValue("InfSection", nil).setValue("ProviderName", nil)
	f.driverKeys = map[int]*fakeNode{0: drv0, 1: drv1}
	return f
}

func sRGBSpace() RawColorSpace {
	var cs RawColorSpace
	cs.Signature = 0x50534F43 // 'PSOC'
	cs.Version = 0x400
	cs.CSType = LCS_sRGB
	cs.Intent = LCS_GM_IMAGES
	cs.GammaRed, cs.GammaGreen, cs.GammaBlue = 2_200_000_000, 2_200_000_000, 2_200_000_000
	encodeWide(cs.Filename[:], `C:\Windows\system32\spool\drivers\color\sRGB Color Space Profile.icm`)
	return cs
}

func (f *fakeOS) EnumDisplayDevices(device string, index uint32, flags uint32) (RawDisplayDevice, bool) {
	if device == "" {
		if int(index) >= len(f.adapters) {
			return RawDisplayDevice{}, false
		}
		return f.adapters[index], true
	}
	kids := f.children[device]
	if int(index) >= len(kids) {
		return RawDisplayDevice{}, false
	}
	c := kids[index]
	id := c.pnpID
	if flags&EDD_GET_DEVICE_INTERFACE_NAME != 0 {
		id = c.iface
	}
	return rawDevice(c.name, c.desc, c.state, id, testVideoKey), true
}

func (f *fakeOS) EnumMonitors(dc DCHandle, fn func(MonitorHandle) bool) error {
	if f.enumErr != nil {
		return f.enumErr
	}
	list := f.monitors
	if dc != 0 {
		list = f.dcMonitors[dc]
	}
	for _, h := range list {
		if !fn(h) {
			break
		}
	}
	return nil
}

func (f *fakeOS) MonitorInfo(h MonitorHandle) (RawMonitorInfo, error) {
	if err := f.infoErrs[h]; err != nil {
		return RawMonitorInfo{}, err
	}
	mi, ok := f.infos[h]
	if !ok {
		return RawMonitorInfo{}, ERROR_INVALID_HANDLE
	}
	return mi, nil
}

func (f *fakeOS) WindowDC(w WindowHandle) (DCHandle, error) {
	dc, ok := f.windowDCs[w]
	if !ok {
		return 0, ERROR_INVALID_HANDLE
	}
	return dc, nil
}

func (f *fakeOS) ReleaseWindowDC(w WindowHandle, dc DCHandle) error {
	f.released = append(f.released, dc)
	return nil
}

func (f *fakeOS) CreateDisplayDC(device string) (DCHandle, error) {
	dc, ok := f.deviceDCs[device]
	if !ok {
		return 0, ERROR_INVALID_PARAMETER
	}
	return dc, nil
}

func (f *fakeOS) DeleteDC(dc DCHandle) error {
	f.deleted = append(f.deleted, dc)
	return nil
}

func (f *fakeOS) ColorSpace(dc DCHandle) (ColorSpaceHandle, error) {
	cs, ok := f.dcSpaces[dc]
	if !ok {
		return 0, ERROR_INVALID_DATA
	}
	return cs, nil
}

func (f *fakeOS) LogColorSpace(cs ColorSpaceHandle) (RawColorSpace, error) {
	raw, ok := f.spaces[cs]
	if !ok {
		return RawColorSpace{}, ERROR_INVALID_HANDLE
	}
	return raw, nil
}

func (f *fakeOS) OpenKey(root RegistryRoot, path string) (RegistryKey, error) {
	if root != LocalMachine {
		return nil, ERROR_FILE_NOT_FOUND
	}
	return f.openNode(f.hklm, path)
}

func (f *fakeOS) MonitorDeviceSet() (DeviceSet, error) {
	return &fakeDeviceSet{os: f}, nil
}

func (f *fakeOS) PhysicalMonitors(h MonitorHandle) ([]byte, uint32, error) {
	raw, ok := f.physical[h]
	if !ok {
		return nil, 0, ERROR_INVALID_HANDLE
	}
	return raw, uint32(len(raw) / physicalMonitorStride(ptrSize)), nil
}

func (f *fakeOS) DestroyPhysicalMonitor(h PhysicalMonitorHandle) error {
	f.destroyed = append(f.destroyed, h)
	return nil
}

// panicOS panics on any host call.
type panicOS struct {
	OS
}

var _ OS = (*fakeOS)(nil)
