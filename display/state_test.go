package display

import (
	"testing"

	"github.com/0xrawsec/toast"
)

func TestStateFlags(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	s := StateAttachedToDesktop | StatePrimaryDevice
	tt.Assert(s.Has(StatePrimaryDevice))
	tt.Assert(s.Has(StateAttachedToDesktop | StatePrimaryDevice))
	tt.Assert(!s.Has(StateRemovable))
	tt.Assert(!s.Has(StatePrimaryDevice | StateRemovable))
	tt.Assert(s.String() == "ATTACHED_TO_DESKTOP|PRIMARY_DEVICE")

	// monitor level aliases share bits
	tt.Assert(StateActive == StateAttachedToDesktop)
	tt.Assert(StateAttached == StateMultiDriver)

	// primary without attached is accepted
	tt.Assert(StatePrimaryDevice.String() == "PRIMARY_DEVICE")

	tt.Assert(StateFlags(0).String() == "0")
	tt.Assert((StateMirroringDriver | 0x100).String() == "MIRRORING_DRIVER|0x100")
	tt.Assert(StateFlags(0xffffffff).String() != "")

	b, err := (StateRemote | StateModesPruned).MarshalText()
	tt.CheckErr(err)
	tt.Assert(string(b) == "REMOTE|MODESPRUNED")
}
