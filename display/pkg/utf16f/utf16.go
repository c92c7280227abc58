// Package utf16f converts fixed-capacity wide character buffers, as filled by
// Win32 APIs, into Go strings.
package utf16f

import (
	"unicode/utf8"
)

const (
	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1

	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
)

// Len returns the number of code units before the first zero terminator,
// or len(src) if there is none.
func Len(src []uint16) int {
	for i, v := range src {
		if v == 0 {
			return i
		}
	}
	return len(src)
}

// Decode converts src up to (not including) the first zero code unit into a
// UTF-8 string. Without a terminator the whole buffer is consumed.
// Unpaired surrogates are replaced by utf8.RuneError, never reported.
func Decode(src []uint16) string {
	src = src[:Len(src)]
	if len(src) == 0 {
		return ""
	}

	// Pre-calculate max size, pairs overestimate by 2 bytes.
	maxLen := 0
	ascii := true
	for _, v := range src {
		switch {
		case v <= rune1Max:
			maxLen += 1
		case v <= rune2Max:
			maxLen += 2
			ascii = false
		default:
			maxLen += 3
			ascii = false
		}
	}

	buf := make([]byte, 0, maxLen)
	if ascii {
		for _, v := range src {
			buf = append(buf, byte(v))
		}
		return string(buf)
	}

	for i := 0; i < len(src); i++ {
		v := rune(src[i])
		switch {
		case v < surr1 || surr3 <= v:
			buf = utf8.AppendRune(buf, v)
		case v < surr2 && i+1 < len(src) &&
			surr2 <= rune(src[i+1]) && rune(src[i+1]) < surr3:
			r := (v-surr1)<<10 | (rune(src[i+1]) - surr2) + surrSelf
			buf = utf8.AppendRune(buf, r)
			i++
		default:
			// lone high or low surrogate
			buf = utf8.AppendRune(buf, utf8.RuneError)
		}
	}
	return string(buf)
}

// Encode returns the UTF-16 encoding of s with a trailing zero, truncated to
// fit n code units (terminator included). n <= 0 means no limit.
func Encode(s string, n int) []uint16 {
	out := make([]uint16, 0, len(s)+1)
	for _, r := range s {
		if r >= surrSelf && r <= utf8.MaxRune {
			r -= surrSelf
			out = append(out, uint16(surr1+(r>>10)&0x3ff), uint16(surr2+r&0x3ff))
			continue
		}
		if surr1 <= r && r < surr3 {
			r = utf8.RuneError
		}
		out = append(out, uint16(r))
	}
	if n > 0 && len(out) > n-1 {
		out = out[:n-1]
	}
	return append(out, 0)
}
