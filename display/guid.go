package display

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/tekert/golang-display/display/pkg/hexf"
)

/*
typedef struct _GUID {
	DWORD Data1;
	WORD Data2;
	WORD Data3;
	BYTE Data4[8];
} GUID;
*/

// GUID structure
// Example: {E6F07B5F-EE97-4A90-B076-33F57BF4EAA7} =
// GUID(0xe6f07b5f, 0xee97, 0x4a90, [8]byte{0xb0, 0x76, 0x33, 0xf5, 0x7b, 0xf4, 0xea, 0xa7})
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

var (
	// GUID_DEVINTERFACE_MONITOR is registered by the OS on a per monitor basis.
	// Inspired by <https://ofekshilon.com/2014/06/19/reading-specific-monitor-dimensions/>
	GUID_DEVINTERFACE_MONITOR = GUID{ /* {E6F07B5F-EE97-4A90-B076-33F57BF4EAA7} */
		Data1: 0xe6f07b5f,
		Data2: 0xee97,
		Data3: 0x4a90,
		Data4: [8]byte{0xb0, 0x76, 0x33, 0xf5, 0x7b, 0xf4, 0xea, 0xa7},
	}

	nullGUID = GUID{}
)

// IsZero checks if GUID is all zeros
func (g GUID) IsZero() bool {
	return g == nullGUID
}

func (g GUID) Equals(other GUID) bool {
	return g == other
}

// String returns the braced UPPERCASE form.
func (g GUID) String() string {
	var b [38]byte
	b[0] = '{'
	b[37] = '}'

	d1 := [4]byte{byte(g.Data1 >> 24), byte(g.Data1 >> 16), byte(g.Data1 >> 8), byte(g.Data1)}
	d2 := [2]byte{byte(g.Data2 >> 8), byte(g.Data2)}
	d3 := [2]byte{byte(g.Data3 >> 8), byte(g.Data3)}

	hexf.EncodeU(b[1:9], d1[:])
	b[9] = '-'
	hexf.EncodeU(b[10:14], d2[:])
	b[14] = '-'
	hexf.EncodeU(b[15:19], d3[:])
	b[19] = '-'
	hexf.EncodeU(b[20:24], g.Data4[:2])
	b[24] = '-'
	hexf.EncodeU(b[25:37], g.Data4[2:])

	return string(b[:])
}

// StringL returns the braced lowercase form, the one interface names use.
func (g GUID) StringL() string {
	return strings.ToLower(g.String())
}

var (
	guidRE = regexp.MustCompile(`^\{?[A-F0-9]{8}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{12}\}?$`)
)

// MustParseGUID parses a guid string into a GUID struct or panics
func MustParseGUID(sguid string) GUID {
	g, err := ParseGUID(sguid)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGUID parses a guid string, braces optional and case insensitive.
func ParseGUID(guid string) (GUID, error) {
	if !guidRE.MatchString(strings.ToUpper(guid)) {
		return GUID{}, fmt.Errorf("%w: bad GUID format %q", ErrMalformedInput, guid)
	}
	digits := strings.ReplaceAll(strings.Trim(guid, "{}"), "-", "")

	var raw [16]byte
	if _, err := hex.Decode(raw[:], []byte(digits)); err != nil {
		return GUID{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	g := GUID{
		Data1: binary.BigEndian.Uint32(raw[0:4]),
		Data2: binary.BigEndian.Uint16(raw[4:6]),
		Data3: binary.BigEndian.Uint16(raw[6:8]),
	}
	copy(g.Data4[:], raw[8:])
	return g, nil
}
