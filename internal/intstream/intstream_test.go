package intstream

import (
	"bytes"
	"testing"

	"github.com/lhcong/wavepack/internal/bitio"
)

func TestRoundTripBothBackends(t *testing.T) {
	for _, backend := range []Backend{Fixed, ShannonFano} {
		unsigned := []uint32{0, 1, 7, 255, 1000, 32767, 42, 42, 42, 9}
		signed := []int32{0, -1, 1, -32768, 32767, -5, -5, 100}

		var buf bytes.Buffer
		bw := bitio.NewWriter(&buf)
		uw := NewWriter(backend)
		sw := NewWriter(backend)
		for _, v := range unsigned {
			uw.PutUint(bw, v)
		}
		for _, v := range signed {
			sw.PutSInt(bw, v)
		}
		if err := bw.Close(); err != nil {
			t.Fatalf("backend %v: %v", backend, err)
		}

		br := bitio.NewReader(&buf)
		ur := NewReader(backend)
		sr := NewReader(backend)
		for i, want := range unsigned {
			if got := ur.GetUint(br); got != want {
				t.Errorf("backend %v: unsigned[%d] = %d, want %d", backend, i, got, want)
			}
		}
		for i, want := range signed {
			if got := sr.GetSInt(br); got != want {
				t.Errorf("backend %v: signed[%d] = %d, want %d", backend, i, got, want)
			}
		}
	}
}

func TestShannonFanoBackendUsesIndependentTables(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	uw := NewWriter(ShannonFano)
	sw := NewWriter(ShannonFano)

	uw.PutUint(bw, 5)
	sw.PutSInt(bw, -5)
	uw.PutUint(bw, 5)
	sw.PutSInt(bw, -5)
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}

	br := bitio.NewReader(&buf)
	ur := NewReader(ShannonFano)
	sr := NewReader(ShannonFano)
	if got := ur.GetUint(br); got != 5 {
		t.Fatalf("GetUint() = %d, want 5", got)
	}
	if got := sr.GetSInt(br); got != -5 {
		t.Fatalf("GetSInt() = %d, want -5", got)
	}
	if got := ur.GetUint(br); got != 5 {
		t.Fatalf("GetUint() = %d, want 5", got)
	}
	if got := sr.GetSInt(br); got != -5 {
		t.Fatalf("GetSInt() = %d, want -5", got)
	}
}
