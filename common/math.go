package common

import (
	"encoding/binary"
	"math"
)

// PutFloat32s writes values into buf as consecutive little-endian IEEE-754 floats.
// This is the byte order expected by WebGPU buffer writes on every supported platform.
//
// Parameters:
//   - buf: destination buffer (must be at least 4*len(values) bytes)
//   - values: the floats to encode
func PutFloat32s(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

// HasNaN reports whether any element of values is NaN or infinite.
//
// Parameters:
//   - values: the floats to inspect
//
// Returns:
//   - bool: true if a non-finite value is present
func HasNaN(values []float32) bool {
	for _, v := range values {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	return false
}
