// Package uintcode implements a static, prefix-free variable-length code for
// non-negative integers in [0,32767], plus its signed extension. It is the
// "Fixed" backend that internal/intstream can select as an alternative to
// the adaptive Shannon-Fano coder.
package uintcode

import "github.com/lhcong/wavepack/internal/bitio"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "uintcode: " + string(e) }

var (
	// ErrOutOfRange is panicked/returned when a value presented to Encode
	// falls outside the codeable range, or EncodeSigned outside [-32768,32767].
	ErrOutOfRange error = Error("value out of range")
	// ErrTruncated is panicked by Decode when no prefix row matches within
	// the longest prefix length. The prefix table is complete and the bit
	// reader yields zero bits past EOF, so a stream that ends early decodes
	// as zeros rather than reaching this error.
	ErrTruncated error = Error("truncated code word")
)

// MaxValue is the largest unsigned integer this code can represent.
const MaxValue = 32767

// prefixes holds, for each useful-bit-count k (0..15), the fixed prefix bit
// string that precedes the k-1 suffix bits.
var prefixes = [16]string{
	"00", "010", "011", "1000", "1001", "1010", "1011",
	"11000", "11001", "11010", "11011", "11100",
	"11101", "11110", "111110", "111111",
}

type row struct {
	val, length uint32
	k           int
}

var rows [16]row

func init() {
	for k, s := range prefixes {
		var val uint32
		for _, c := range s {
			val <<= 1
			if c == '1' {
				val |= 1
			}
		}
		rows[k] = row{val: val, length: uint32(len(s)), k: k}
	}
}

// usefulBits returns k = floor(log2(v))+1 for v>=1, and 0 for v==0 — the
// number of useful bits in v.
func usefulBits(v uint32) int {
	k := 0
	for v > 0 {
		k++
		v >>= 1
	}
	return k
}

// Encode writes v (which must be in [0,MaxValue]) to bw using the fixed
// prefix code. It panics with ErrOutOfRange if v exceeds MaxValue.
func Encode(bw *bitio.Writer, v uint32) {
	if v > MaxValue {
		panic(ErrOutOfRange)
	}
	k := usefulBits(v)
	p := rows[k]
	bw.PutBits(p.val, uint(p.length))
	if k > 1 {
		suffixBits := uint(k - 1)
		suffix := v & ((1 << suffixBits) - 1)
		bw.PutBits(suffix, suffixBits)
	}
}

// Decode reads one value previously written by Encode. It reads bits one at
// a time until the accumulated bit string matches exactly one prefix row
// (the code is prefix-free by construction), then reads the row's k-1
// suffix bits and returns (1<<(k-1))|suffix, or 0 for the k=0 row.
func Decode(br *bitio.Reader) uint32 {
	var acc, length uint32
	for length < 6 {
		acc = acc<<1 | boolToBit(br.GetBit())
		length++
		for _, r := range rows {
			if r.length == length && r.val == acc {
				if r.k < 2 {
					return uint32(r.k)
				}
				suffixBits := uint(r.k - 1)
				return (1 << suffixBits) | br.GetBits(suffixBits)
			}
		}
	}
	panic(ErrTruncated)
}

func boolToBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// EncodeSigned writes a signed integer in [-32768,32767]: one leading sign
// bit (0 non-negative, 1 negative), then the unsigned code of v if
// non-negative, else of -v-1.
func EncodeSigned(bw *bitio.Writer, v int32) {
	if v < -32768 || v > 32767 {
		panic(ErrOutOfRange)
	}
	if v >= 0 {
		bw.PutBit(false)
		Encode(bw, uint32(v))
	} else {
		bw.PutBit(true)
		Encode(bw, uint32(-v-1))
	}
}

// DecodeSigned is the inverse of EncodeSigned. The sign bit is always read
// before the magnitude, so the result never depends on argument evaluation
// order.
func DecodeSigned(br *bitio.Reader) int32 {
	negative := br.GetBit()
	mag := int32(Decode(br))
	if negative {
		return -mag - 1
	}
	return mag
}
