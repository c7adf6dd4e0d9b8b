// Package rle run-length encodes a sequence of floating-point coefficients,
// each rounded to its nearest integer, over an unsigned and a signed
// intstream. It is the layer that turns the long runs of identical
// quantized wavelet coefficients into a short symbol sequence for the
// entropy coders underneath.
package rle

import (
	"math"

	"github.com/lhcong/wavepack/internal/bitio"
	"github.com/lhcong/wavepack/internal/intstream"
)

// Encode writes len(values) as a leading unsigned count, then walks values
// emitting (run_length-1, value) pairs for each maximal run of equal
// rounded integers. lengths and values are independent int streams (the
// pipeline typically gives each its own backend/table).
func Encode(bw *bitio.Writer, lengths, values *intstream.Writer, coeffs []float32) {
	lengths.PutUint(bw, uint32(len(coeffs)))

	i := 0
	for i < len(coeffs) {
		v := roundToInt(coeffs[i])
		run := 1
		for i+run < len(coeffs) && roundToInt(coeffs[i+run]) == v {
			run++
		}
		lengths.PutUint(bw, uint32(run-1))
		values.PutSInt(bw, v)
		i += run
	}
}

// Decode is the inverse of Encode: it reads the leading count, then
// (run_length-1, value) pairs until that many samples have been produced.
func Decode(br *bitio.Reader, lengths, values *intstream.Reader) []float32 {
	n := int(lengths.GetUint(br))
	out := make([]float32, 0, n)
	for len(out) < n {
		runMinusOne := lengths.GetUint(br)
		v := values.GetSInt(br)
		for k := uint32(0); k <= runMinusOne; k++ {
			out = append(out, float32(v))
		}
	}
	return out
}

func roundToInt(f float32) int32 {
	return int32(math.Round(float64(f)))
}
