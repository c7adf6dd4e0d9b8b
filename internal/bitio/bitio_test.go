package bitio

import (
	"bytes"
	"testing"
)

func TestWriterPutBit(t *testing.T) {
	var vectors = []struct {
		desc string
		bits []bool
		want []byte
	}{{
		desc: "empty stream",
		bits: nil,
		want: nil,
	}, {
		desc: "single set bit, padded with zeros",
		bits: []bool{true},
		want: []byte{0x80},
	}, {
		desc: "eight bits, exact byte",
		bits: []bool{false, false, false, false, true, false, true, true},
		want: []byte{0x0b},
	}, {
		desc: "nine bits, spills into a second byte",
		bits: []bool{true, true, true, true, true, true, true, true, true},
		want: []byte{0xff, 0x80},
	}}
	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			var buf bytes.Buffer
			bw := NewWriter(&buf)
			for _, b := range v.bits {
				bw.PutBit(b)
			}
			if err := bw.Close(); err != nil {
				t.Fatalf("Close() = %v", err)
			}
			if got := buf.Bytes(); !bytes.Equal(got, v.want) {
				t.Errorf("got %x, want %x", got, v.want)
			}
		})
	}
}

func TestPutBitsGetBits(t *testing.T) {
	var vectors = []struct {
		v uint32
		n uint
	}{
		{0, 0}, {0, 1}, {1, 1}, {2, 2}, {7, 3}, {255, 8},
		{1 << 16, 17}, {0xdeadbeef, 32}, {0, 8},
	}
	for _, v := range vectors {
		var buf bytes.Buffer
		bw := NewWriter(&buf)
		bw.PutBits(v.v, v.n)
		if err := bw.Close(); err != nil {
			t.Fatalf("Close() = %v", err)
		}
		br := NewReader(&buf)
		got := br.GetBits(v.n)
		if got != v.v {
			t.Errorf("PutBits(%d,%d)/GetBits round trip = %d, want %d", v.v, v.n, got, v.v)
		}
	}
}

// TestBoundaryExample checks the MSB-first layout explicitly: the bits
// "00001011" packed from the left give the byte 0x0b.
func TestBoundaryExample(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	for _, c := range "00001011" {
		bw.PutBit(c == '1')
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.Bytes(), []byte{0x0b}; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestReaderPastEOF(t *testing.T) {
	br := NewReader(bytes.NewReader([]byte{0xff}))
	for i := 0; i < 8; i++ {
		if !br.GetBit() {
			t.Fatalf("bit %d: got false, want true", i)
		}
	}
	// Reading past EOF must yield zero bits forever, not an error.
	for i := 0; i < 16; i++ {
		if br.GetBit() {
			t.Fatalf("past-EOF bit %d: got true, want false", i)
		}
	}
}
