package display

import (
	"github.com/tekert/golang-display/display/pkg/utf16f"
)

// DecodeWideString converts a fixed-capacity wide character buffer into a
// string. Conversion stops at the first zero code unit; a buffer without one
// is consumed whole. Unpaired surrogates are replaced, never reported.
func DecodeWideString(buf []uint16) string {
	return utf16f.Decode(buf)
}

// encodeWide fills a fixed buffer, used by adapters and test fakes.
func encodeWide(dst []uint16, s string) {
	src := utf16f.Encode(s, len(dst))
	clear(dst)
	copy(dst, src)
}
