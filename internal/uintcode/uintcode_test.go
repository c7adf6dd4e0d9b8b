package uintcode

import (
	"bytes"
	"testing"

	"github.com/lhcong/wavepack/internal/bitio"
)

func TestRoundTripAllValues(t *testing.T) {
	for v := uint32(0); v <= MaxValue; v++ {
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		Encode(bw, v)
		bw.Close()
		br := bitio.NewReader(&buf)
		if got := Decode(br); got != v {
			t.Fatalf("Decode(Encode(%d)) = %d", v, got)
		}
	}
}

func TestRoundTripSigned(t *testing.T) {
	for v := int32(-32768); v <= 32767; v += 37 { // sample the full range
		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		EncodeSigned(bw, v)
		bw.Close()
		br := bitio.NewReader(&buf)
		if got := DecodeSigned(br); got != v {
			t.Fatalf("DecodeSigned(EncodeSigned(%d)) = %d", v, got)
		}
	}
}

func TestEncodeOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Encode(32768) did not panic")
		}
	}()
	var buf bytes.Buffer
	Encode(bitio.NewWriter(&buf), 32768)
}

// TestBoundaryScenario covers the useful-bit-count boundaries: encoding
// [0,1,2,3,4,7,8,15,16,31,32767] and decoding it back exactly.
func TestBoundaryScenario(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 4, 7, 8, 15, 16, 31, 32767}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for _, v := range values {
		Encode(bw, v)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}

	br := bitio.NewReader(&buf)
	for _, want := range values {
		if got := Decode(br); got != want {
			t.Errorf("Decode() = %d, want %d", got, want)
		}
	}
}

// TestSignedExample covers small magnitudes on both sides of zero.
func TestSignedExample(t *testing.T) {
	values := []int32{2, 1, 0, -1, -2, -3}

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for _, v := range values {
		EncodeSigned(bw, v)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}

	br := bitio.NewReader(&buf)
	for _, want := range values {
		if got := DecodeSigned(br); got != want {
			t.Errorf("DecodeSigned() = %d, want %d", got, want)
		}
	}
}
