package hexf

// Small hex helpers for identifiers, error codes and binary blobs (EDID)
// with fewer allocations than fmt.

import (
	"strings"
	"unsafe"
)

var hextableUpper = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}
var hextableLower = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// EncodeU encodes src into 2*len(src) UPPERCASE hex bytes of dst and returns
// the number of bytes written.
func EncodeU(dst, src []byte) int {
	return encode(dst, src, &hextableUpper)
}

// Encode encodes src into 2*len(src) lowercase hex bytes of dst and returns
// the number of bytes written.
func Encode(dst, src []byte) int {
	return encode(dst, src, &hextableLower)
}

func encode(dst, src []byte, hexTable *[16]byte) int {
	j := 0
	for _, v := range src {
		dst[j] = hexTable[v>>4]
		dst[j+1] = hexTable[v&0x0f]
		j += 2
	}
	return len(src) * 2
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := make([]byte, len(src)*2)
	Encode(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// EncodeToStringU returns the UPPERCASE hex encoding of src.
func EncodeToStringU(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := make([]byte, len(src)*2)
	EncodeU(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// NUm32 formats n as "0x" followed by UPPERCASE hex with leading zeroes
// trimmed (0 -> "0x0").
func NUm32(n uint32) string {
	var b [10]byte
	b[0] = '0'
	b[1] = 'x'
	i := len(b)
	for {
		i--
		b[i] = hextableUpper[n&0xf]
		n >>= 4
		if n == 0 {
			break
		}
	}
	w := copy(b[2:], b[i:])
	return string(b[:2+w])
}

// Dump renders src as lines of perLine space separated UPPERCASE byte pairs,
// each prefixed with its offset. EDID blocks are 128 bytes so 16 per line
// lines up with the usual vendor tooling.
func Dump(src []byte, perLine int) string {
	if perLine <= 0 {
		perLine = 16
	}
	var sb strings.Builder
	sb.Grow(len(src)*3 + (len(src)/perLine+1)*6)

	var pair [2]byte
	var off [2]byte
	for i := 0; i < len(src); i += perLine {
		if i > 0 {
			sb.WriteByte('\n')
		}
		off[0] = byte(i >> 8)
		off[1] = byte(i)
		var ob [4]byte
		EncodeU(ob[:], off[:])
		sb.Write(ob[:])
		sb.WriteByte(':')

		end := min(i+perLine, len(src))
		for _, v := range src[i:end] {
			EncodeU(pair[:], []byte{v})
			sb.WriteByte(' ')
			sb.Write(pair[:])
		}
	}
	return sb.String()
}
