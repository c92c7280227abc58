package hexf

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"Empty", []byte{}},
		{"Nil", nil},
		{"SingleZero", []byte{0}},
		{"SingleDigit", []byte{5}},
		{"TwoDigits", []byte{0x3f}},
		{"LeadingZeros", []byte{0, 0, 0x0a, 0x7b}},
		{"EDIDHeader", []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := hex.EncodeToString(tt.input)
			if got := EncodeToString(tt.input); got != want {
				t.Errorf("EncodeToString() = %q, want %q", got, want)
			}
			if got := EncodeToStringU(tt.input); got != strings.ToUpper(want) {
				t.Errorf("EncodeToStringU() = %q, want %q", got, strings.ToUpper(want))
			}
		})
	}
}

func TestNUm32(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0, "0x0"},
		{5, "0x5"},
		{0xea, "0xEA"},
		{0x103, "0x103"},
		{0x80070005, "0x80070005"},
		{0xffffffff, "0xFFFFFFFF"},
	}
	for _, tt := range tests {
		if got := NUm32(tt.in); got != tt.want {
			t.Errorf("NUm32(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDump(t *testing.T) {
	if got := Dump(nil, 16); got != "" {
		t.Fatalf("Dump(nil) = %q", got)
	}

	src := make([]byte, 20)
	for i := range src {
		src[i] = byte(i)
	}
	got := Dump(src, 16)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Dump lines = %d, want 2:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "0000: 00 01 02") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "0010: 10 11 12 13" {
		t.Errorf("second line = %q", lines[1])
	}

	// perLine <= 0 falls back to 16
	if Dump(src, 0) != got {
		t.Errorf("Dump default width mismatch")
	}
}
