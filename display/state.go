package display

import (
	"strings"

	"github.com/tekert/golang-display/display/pkg/hexf"
)

// StateFlags is the DISPLAY_DEVICE StateFlags bit set. Any combination is
// accepted, including bits this package has no name for; relations such as
// primary implying attached are host behaviour and are not enforced.
type StateFlags uint32

// Adapter level flags.
const (
	// The device is part of the desktop.
	StateAttachedToDesktop StateFlags = 0x00000001
	StateMultiDriver       StateFlags = 0x00000002
	// The primary desktop is on the device. For a system with a single
	// display card, this is always set. For a system with multiple display
	// cards, only one device can have this set.
	StatePrimaryDevice StateFlags = 0x00000004
	// A pseudo device used to mirror application drawing for remoting or
	// other purposes. An invisible pseudo monitor is associated with it.
	StateMirroringDriver StateFlags = 0x00000008
	// The device is VGA compatible.
	StateVGACompatible StateFlags = 0x00000010
	// The device is removable; it cannot be the primary display.
	StateRemovable StateFlags = 0x00000020
	StateAccDriver StateFlags = 0x00000040
	// The device has more display modes than its output devices support.
	StateModesPruned   StateFlags = 0x08000000
	StateRemote        StateFlags = 0x04000000
	StateDisconnect    StateFlags = 0x02000000
	StateRDPUDD        StateFlags = 0x01000000
	StateTSCompatible  StateFlags = 0x00200000
	StateUnsafeModesOn StateFlags = 0x00080000
)

// Monitor level flags, they reuse the low adapter bits.
const (
	// The monitor is presented as being "on" by the respective GDI view.
	StateActive   StateFlags = 0x00000001
	StateAttached StateFlags = 0x00000002
)

var stateNames = []struct {
	flag StateFlags
	name string
}{
	{StateAttachedToDesktop, "ATTACHED_TO_DESKTOP"},
	{StateMultiDriver, "MULTI_DRIVER"},
	{StatePrimaryDevice, "PRIMARY_DEVICE"},
	{StateMirroringDriver, "MIRRORING_DRIVER"},
	{StateVGACompatible, "VGA_COMPATIBLE"},
	{StateRemovable, "REMOVABLE"},
	{StateAccDriver, "ACC_DRIVER"},
	{StateUnsafeModesOn, "UNSAFE_MODES_ON"},
	{StateTSCompatible, "TS_COMPATIBLE"},
	{StateRDPUDD, "RDPUDD"},
	{StateDisconnect, "DISCONNECT"},
	{StateRemote, "REMOTE"},
	{StateModesPruned, "MODESPRUNED"},
}

// Has reports whether every bit of f is set.
func (s StateFlags) Has(f StateFlags) bool {
	return s&f == f
}

// String joins the adapter level flag names with '|'. Unknown bits are
// appended as hex.
func (s StateFlags) String() string {
	if s == 0 {
		return "0"
	}
	var parts []string
	rest := s
	for _, n := range stateNames {
		if s&n.flag != 0 {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, hexf.NUm32(uint32(rest)))
	}
	return strings.Join(parts, "|")
}

func (s StateFlags) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
