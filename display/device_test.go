package display

import (
	"testing"

	"github.com/0xrawsec/toast"
	"github.com/tekert/golang-display/internal/test"
)

func TestDisplayDevices(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	h := NewHost(newFakeOS())
	devices, err := h.DisplayDevices()
	tt.CheckErr(err)
	tt.Assert(len(devices) == 3)

	d := devices[0]
	tt.Assert(d.Name == `\\.\DISPLAY1`)
	tt.Assert(d.Description == "Intel(R) UHD Graphics 620")
	tt.Assert(d.State.Has(StatePrimaryDevice))
	tt.Assert(d.DeviceID == `PCI\VEN_8086&DEV_5917`)
	tt.Assert(d.RegistryKey == testVideoKey)
	tt.Assert(d.HasRegistryKey())
	tt.Assert(!devices[2].HasRegistryKey())

	p, err := h.PrimaryDisplayDevice()
	tt.CheckErr(err)
	tt.Assert(p.Name == d.Name)
}

func TestDisplayDevicesNoPrimary(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	f := newFakeOS()
	for i := range f.adapters {
		f.adapters[i].StateFlags &^= uint32(StatePrimaryDevice)
	}
	_, err := NewHost(f).PrimaryDisplayDevice()
	tt.ExpectErr(err, ErrNoPrimaryDevice)

	f.adapters = nil
	devices, err := NewHost(f).DisplayDevices()
	tt.CheckErr(err)
	tt.Assert(len(devices) == 0)
}

func TestInterfaceName(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	h := NewHost(newFakeOS())

	name, err := h.InterfaceName(`\\.\DISPLAY1`)
	tt.CheckErr(err)
	tt.Assert(name == testIface1)

	_, err = h.InterfaceName(`\\.\DISPLAY3`)
	tt.ExpectErr(err, ErrNonexistentInterfaceName)

	devices, err := h.DisplayDevices()
	tt.CheckErr(err)
	id, err := h.Identity(devices[1])
	tt.CheckErr(err)
	tt.Assert(id == MonitorIdentity{"DELA0B1", "5&1f2e3d&0&UID4353"})
}

func TestAttachedMonitors(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	f := newFakeOS()
	f.children[`\\.\DISPLAY1`] = append(f.children[`\\.\DISPLAY1`], fakeChild{
		name: `\\.\DISPLAY1\Monitor1`, desc: "Mirror", pnpID: `MONITOR\Default_Monitor`,
	})
	h := NewHost(f)

	devices, err := h.DisplayDevices()
	tt.CheckErr(err)
	ams := h.AttachedMonitors(devices[0])
	tt.Assert(len(ams) == 2)
	tt.Assert(ams[0].Device.Name == `\\.\DISPLAY1\Monitor0`)
	tt.Assert(ams[0].Device.State.Has(StateActive))
	tt.Assert(ams[0].InterfaceName == testIface1)
	tt.Assert(ams[0].Identity.DriverID == "MEI96A2")
	tt.Assert(ams[1].Identity.IsZero())

	// an adapter without monitors is an empty list, not an error
	ams = h.AttachedMonitors(devices[2])
	tt.Assert(ams != nil && len(ams) == 0)
}
