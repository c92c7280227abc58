package display

const (
	fxpt2Dot30One = 1 << 30
	nanoScale     = 1_000_000_000
)

// Decode2Dot30 converts a FXPT2DOT30 value (2 integer bits, 30 fractional
// bits) to float32.
//
// The ratio v*10^9/2^30 is computed in 64 bit integers and truncated before
// the single float division, this keeps results bit exact with values read
// by other tools off the same records. Negative inputs truncate toward zero.
func Decode2Dot30(v int32) float32 {
	n := int64(v) * nanoScale / fxpt2Dot30One
	return float32(n) / float32(nanoScale)
}

// Decode8Dot8Gamma converts a LOGCOLORSPACE gamma field.
//
// Despite the documented 8.8 format the host values behave as a plain linear
// scale of 10^9, so 2_000_000_000 decodes to 2.0. Not to be merged with
// Decode2Dot30.
func Decode8Dot8Gamma(v uint32) float32 {
	return float32(v) / float32(nanoScale)
}
