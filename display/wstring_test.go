package display

import (
	"strings"
	"testing"

	"github.com/0xrawsec/toast"
)

func TestDecodeWideString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	var empty [CCHDEVICENAME]uint16
	tt.Assert(DecodeWideString(empty[:]) == "")
	tt.Assert(DecodeWideString(nil) == "")

	// no terminator, the whole buffer is used
	var full [8]uint16
	for i := range full {
		full[i] = 'A' + uint16(i)
	}
	tt.Assert(DecodeWideString(full[:]) == "ABCDEFGH")

	var name [CCHDEVICENAME]uint16
	encodeWide(name[:], `\\.\DISPLAY1`)
	tt.Assert(DecodeWideString(name[:]) == `\\.\DISPLAY1`)

	// stops at the first terminator even with data after it
	buf := []uint16{'a', 'b', 0, 'c'}
	tt.Assert(DecodeWideString(buf) == "ab")

	// unpaired surrogate is replaced
	tt.Assert(DecodeWideString([]uint16{'x', 0xd800, 'y'}) == "x\uFFFDy")
	// a valid pair is kept
	tt.Assert(DecodeWideString([]uint16{0xd83d, 0xdda5}) == "\U0001F5A5")
}

func TestEncodeWideTruncates(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	var small [4]uint16
	encodeWide(small[:], "DISPLAY")
	tt.Assert(DecodeWideString(small[:]) == "DIS")
	tt.Assert(small[3] == 0)

	// stale content is cleared
	encodeWide(small[:], "A")
	tt.Assert(small == [4]uint16{'A', 0, 0, 0})

	long := strings.Repeat("x", deviceKeyLen*2)
	var key [deviceKeyLen]uint16
	encodeWide(key[:], long)
	tt.Assert(len(DecodeWideString(key[:])) == deviceKeyLen-1)
}
