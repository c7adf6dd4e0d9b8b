// Package codec wires the bit I/O, entropy, RLE, and wavelet layers into the
// two end-to-end pipeline operations: Encode (image -> compressed
// bitstream) and Decode (compressed bitstream -> image), plus the
// container framing between them.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/dsnet/golib/hashutil"

	"github.com/lhcong/wavepack/internal/bitio"
	"github.com/lhcong/wavepack/internal/intstream"
	"github.com/lhcong/wavepack/internal/rle"
	"github.com/lhcong/wavepack/pgm"
	"github.com/lhcong/wavepack/wavelet"
)

// headerLen is the fixed size of the container header: 4-byte magic,
// little-endian height and width (int32 each), little-endian quality
// (float32), and a one-byte backend tag.
const headerLen = 4 + 4 + 4 + 4 + 1

// trailerLen is the size of the trailing combined CRC-32 checksum.
const trailerLen = 4

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "codec: " + string(e) }

var (
	// ErrBadMagic is returned when a compressed stream doesn't start with
	// the expected container magic.
	ErrBadMagic error = Error("not a wavepack stream")
	// ErrChecksumMismatch is returned when the trailing CRC-32 doesn't
	// match the decoded header and payload.
	ErrChecksumMismatch error = Error("checksum mismatch")
)

// magic identifies the container format at the start of every stream.
var magic = [4]byte{'W', 'V', 'P', 'K'}

// Options configures an Encode/Decode session. Diag, if non-nil, receives
// the same progress lines the original C tool printed to stderr at each
// pipeline stage; it is nil (silent) unless a caller opts in.
type Options struct {
	Quality float64
	Backend intstream.Backend
	Diag    io.Writer
}

func (opt Options) logf(format string, args ...interface{}) {
	if opt.Diag != nil {
		fmt.Fprintf(opt.Diag, format, args...)
	}
}

// Encode reads a grayscale PGM image from src, applies the wavelet
// transform, quantizer, RLE, and entropy coder, and writes the
// self-describing compressed container to dst.
func Encode(dst io.Writer, src io.Reader, opt Options) error {
	img, err := pgm.Decode(src)
	if err != nil {
		return err
	}

	m := wavelet.NewMatrix(img.H, img.W)
	for i := 0; i < img.H; i++ {
		for j := 0; j < img.W; j++ {
			m.T[i][j] = float32(img.At(i, j))
		}
	}

	opt.logf("Compression ondelette, image %dx%d\n", img.W, img.H)
	wavelet.Forward(m)
	opt.logf("Quantification qualité = %g\n", opt.Quality)
	wavelet.Quantize(m, opt.Quality)
	opt.logf("Codage\n")
	coeffs := wavelet.Linearize(m)

	var header bytes.Buffer
	header.Write(magic[:])
	binary.Write(&header, binary.LittleEndian, int32(img.H))
	binary.Write(&header, binary.LittleEndian, int32(img.W))
	binary.Write(&header, binary.LittleEndian, float32(opt.Quality))
	header.WriteByte(byte(opt.Backend))

	var payload bytes.Buffer
	bw := bitio.NewWriter(&payload)
	lengths := intstream.NewWriter(opt.Backend)
	values := intstream.NewWriter(opt.Backend)
	rle.Encode(bw, lengths, values, coeffs)
	if err := bw.Close(); err != nil {
		return err
	}

	if _, err := dst.Write(header.Bytes()); err != nil {
		return Error("write error: " + err.Error())
	}
	if _, err := dst.Write(payload.Bytes()); err != nil {
		return Error("write error: " + err.Error())
	}

	crcHeader := crc32.ChecksumIEEE(header.Bytes())
	crcPayload := crc32.ChecksumIEEE(payload.Bytes())
	trailer := hashutil.CombineCRC32(crc32.IEEE, crcHeader, crcPayload, int64(payload.Len()))
	var trailerBuf [4]byte
	binary.LittleEndian.PutUint32(trailerBuf[:], trailer)
	if _, err := dst.Write(trailerBuf[:]); err != nil {
		return Error("write error: " + err.Error())
	}
	return nil
}

// Decode reads a compressed container from src, inverts the pipeline, and
// writes the reconstructed grayscale PGM image to dst. diag, if non-nil,
// receives the same progress lines Encode's Options.Diag does; pass nil for
// silent operation.
func Decode(dst io.Writer, src io.Reader, diag io.Writer) error {
	logf := func(format string, args ...interface{}) {
		if diag != nil {
			fmt.Fprintf(diag, format, args...)
		}
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return Error("read error: " + err.Error())
	}
	if len(raw) < headerLen+trailerLen {
		return Error("truncated stream")
	}
	trailerOff := len(raw) - trailerLen
	header, payload, trailer := raw[:headerLen], raw[headerLen:trailerOff], raw[trailerOff:]

	if [4]byte{header[0], header[1], header[2], header[3]} != magic {
		return ErrBadMagic
	}

	crcHeader := crc32.ChecksumIEEE(header)
	crcPayload := crc32.ChecksumIEEE(payload)
	want := hashutil.CombineCRC32(crc32.IEEE, crcHeader, crcPayload, int64(len(payload)))
	if binary.LittleEndian.Uint32(trailer) != want {
		return ErrChecksumMismatch
	}

	h := int(int32(binary.LittleEndian.Uint32(header[4:8])))
	w := int(int32(binary.LittleEndian.Uint32(header[8:12])))
	quality := float64(math.Float32frombits(binary.LittleEndian.Uint32(header[12:16])))
	backend := intstream.Backend(header[16])

	br := bitio.NewReader(bytes.NewReader(payload))
	lengths := intstream.NewReader(backend)
	values := intstream.NewReader(backend)
	logf("Décodage\n")
	coeffs := rle.Decode(br, lengths, values)

	m := wavelet.NewMatrix(h, w)
	wavelet.Delinearize(m, coeffs)
	logf("Déquantification qualité = %g\n", quality)
	wavelet.Dequantize(m, quality)
	logf("Décompression ondelette, image %dx%d\n", w, h)
	wavelet.Inverse(m)

	img := &pgm.Image{H: h, W: w, Pix: make([]byte, h*w)}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			img.Set(i, j, clampByte(m.T[i][j]))
		}
	}
	return pgm.Encode(dst, img)
}

func clampByte(v float32) byte {
	r := int32(v + 0.5)
	if v < 0 {
		r = int32(v - 0.5)
	}
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}
