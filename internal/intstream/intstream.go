// Package intstream provides a small capability for writing and reading
// unsigned and signed integers against one of two interchangeable entropy
// backends: the static prefix code in internal/uintcode, or an adaptive
// internal/shannonfano table. Callers pick a backend once per session; the
// RLE stage built on top never needs to know which one is in effect.
package intstream

import (
	"github.com/lhcong/wavepack/internal/bitio"
	"github.com/lhcong/wavepack/internal/shannonfano"
	"github.com/lhcong/wavepack/internal/uintcode"
)

// Backend identifies which entropy coder an IntStream delegates to. It is
// also the byte stored in the compressed container so a decoder can
// recreate the same stream configuration the encoder used.
type Backend byte

const (
	// Fixed selects the static, non-adaptive prefix code.
	Fixed Backend = iota
	// ShannonFano selects the adaptive frequency-table code.
	ShannonFano
)

// Writer emits unsigned and signed integers through whichever backend it
// was constructed with. A tagged-variant struct is used rather than an
// interface hierarchy so the zero-allocation Fixed path never needs a
// virtual dispatch.
type Writer struct {
	backend Backend
	sf      *shannonfano.Table // used when backend == ShannonFano
}

// NewWriter creates a Writer using the given backend. For ShannonFano, a
// fresh table is seeded (ESCAPE, occurrence 1).
func NewWriter(backend Backend) *Writer {
	w := &Writer{backend: backend}
	if backend == ShannonFano {
		w.sf = shannonfano.New()
	}
	return w
}

// PutUint writes an unsigned value in [0, uintcode.MaxValue].
func (w *Writer) PutUint(bw *bitio.Writer, v uint32) {
	switch w.backend {
	case Fixed:
		uintcode.Encode(bw, v)
	case ShannonFano:
		w.sf.Encode(bw, int32(v))
	}
}

// PutSInt writes a signed value in [-32768, 32767].
func (w *Writer) PutSInt(bw *bitio.Writer, v int32) {
	switch w.backend {
	case Fixed:
		uintcode.EncodeSigned(bw, v)
	case ShannonFano:
		w.sf.Encode(bw, v)
	}
}

// Reader is the read-side counterpart of Writer.
type Reader struct {
	backend Backend
	sf      *shannonfano.Table
}

// NewReader creates a Reader using the given backend, mirroring NewWriter.
func NewReader(backend Backend) *Reader {
	r := &Reader{backend: backend}
	if backend == ShannonFano {
		r.sf = shannonfano.New()
	}
	return r
}

// GetUint reads one value written by Writer.PutUint.
func (r *Reader) GetUint(br *bitio.Reader) uint32 {
	switch r.backend {
	case Fixed:
		return uintcode.Decode(br)
	case ShannonFano:
		return uint32(r.sf.Decode(br))
	}
	panic("intstream: unknown backend")
}

// GetSInt reads one value written by Writer.PutSInt.
func (r *Reader) GetSInt(br *bitio.Reader) int32 {
	switch r.backend {
	case Fixed:
		return uintcode.DecodeSigned(br)
	case ShannonFano:
		return r.sf.Decode(br)
	}
	panic("intstream: unknown backend")
}
