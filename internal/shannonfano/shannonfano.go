// Package shannonfano implements an adaptive Shannon-Fano entropy coder: an
// alphabet table that grows on demand via an ESCAPE symbol and stays sorted
// by occurrence after every symbol, coded through recursive binary splits
// instead of a transmitted code tree.
//
// The table's reordering-on-increment is the same shape as a move-to-front
// table: both keep a small in-place-mutated alphabet and re-derive
// per-symbol state from its current order rather than rebuilding a tree
// from scratch.
package shannonfano

import "github.com/lhcong/wavepack/internal/bitio"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "shannonfano: " + string(e) }

var (
	// ErrTableOverflow is panicked/returned when a table would grow past
	// maxEvents.
	ErrTableOverflow error = Error("alphabet table overflow")
)

// Escape is the reserved sentinel alphabet value (the largest positive
// 32-bit integer) signaling that the next 32 raw bits carry a new literal
// to add to the table.
const Escape = int32(0x7fffffff)

// maxEvents bounds the table the way the original's fixed
// `evenements[200000]` array did, without requiring a true fixed-size array.
const maxEvents = 200000

// Event is one alphabet entry: a value and its running occurrence count.
type Event struct {
	Value       int32
	Occurrences uint32
}

// Table is an adaptive Shannon-Fano alphabet. The zero value is not usable;
// construct one with New. A Table is not safe for concurrent use — each
// encode or decode session owns its own encoder table and, if signed values
// are also being coded, a second independent Table for those.
type Table struct {
	events []Event
}

// New creates a table seeded with only the ESCAPE entry at occurrence 1,
// the state every encode or decode session starts from.
func New() *Table {
	return &Table{events: []Event{{Value: Escape, Occurrences: 1}}}
}

// Len reports the current alphabet size (including ESCAPE).
func (t *Table) Len() int { return len(t.events) }

// Event returns a copy of the i'th entry, for tests and diagnostics.
func (t *Table) Event(i int) Event { return t.events[i] }

// findPosition returns the index of value, or the index of ESCAPE if value
// is not yet in the table.
func (t *Table) findPosition(value int32) int {
	escapePos := 0
	for i, e := range t.events {
		if e.Value == Escape {
			escapePos = i
		}
		if e.Value == value {
			return i
		}
	}
	return escapePos
}

// findSeparation returns the index s in [lo,hi] such that splitting the
// window into [lo..s] and [s+1..hi] minimizes the absolute difference
// between the two sides' occurrence sums, preferring the smallest such s on
// ties. A single-element window has no split and returns -1; this falls out
// of the algorithm itself without needing a special case, since the caller
// never invokes it on a window of size one.
func (t *Table) findSeparation(lo, hi int) int {
	sum := 0
	for i := lo; i <= hi; i++ {
		sum += int(t.events[i].Occurrences)
	}

	rightSum := 0
	minDiff := sum
	index := -1
	for i := lo; i <= hi; i++ {
		sum -= int(t.events[i].Occurrences)
		rightSum += int(t.events[i].Occurrences)
		diff := rightSum - sum
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			index = i
		}
	}
	return index
}

// encodePosition emits the bits that lead a decoder with an identical table
// to position via repeated binary splits. Emits nothing when the table has
// a single element.
func (t *Table) encodePosition(bw *bitio.Writer, position int) {
	lo, hi := 0, len(t.events)-1
	for lo != hi {
		s := t.findSeparation(lo, hi)
		if position > s {
			bw.PutBit(true)
			lo = s + 1
		} else {
			bw.PutBit(false)
			hi = s
		}
	}
}

// decodePosition is the inverse of encodePosition.
func (t *Table) decodePosition(br *bitio.Reader) int {
	lo, hi := 0, len(t.events)-1
	for lo != hi {
		s := t.findSeparation(lo, hi)
		if br.GetBit() {
			lo = s + 1
		} else {
			hi = s
		}
	}
	return lo
}

// incrementAndReorder bumps events[p]'s occurrence and restores the
// non-increasing sort with a single swap: it swaps p with the smallest
// index q<p whose occurrence is now strictly less than p's.
func (t *Table) incrementAndReorder(p int) {
	t.events[p].Occurrences++
	for q := 0; q < p; q++ {
		if t.events[p].Occurrences > t.events[q].Occurrences {
			t.events[p], t.events[q] = t.events[q], t.events[p]
			break
		}
	}
}

// Encode writes value using the current table, then updates the table. If
// value is not yet known, ESCAPE's position is coded and value follows as
// 32 raw bits before being appended to the alphabet.
func (t *Table) Encode(bw *bitio.Writer, value int32) {
	p := t.findPosition(value)
	t.encodePosition(bw, p)
	if t.events[p].Value == Escape {
		if len(t.events) >= maxEvents {
			panic(ErrTableOverflow)
		}
		t.events = append(t.events, Event{Value: value})
		bw.PutBits(uint32(value), 32)
		p = len(t.events) - 1
	}
	t.incrementAndReorder(p)
}

// Decode reads one value previously written by Encode against a Table that
// has tracked the same sequence of symbols, and updates the table the same
// way Encode does. When the table holds only ESCAPE, decodePosition and
// encodePosition both naturally consume zero bits for the position, so no
// separate first-symbol branch is needed — the shared append+increment path
// below reproduces it exactly.
func (t *Table) Decode(br *bitio.Reader) int32 {
	p := t.decodePosition(br)
	var value int32
	if t.events[p].Value == Escape {
		value = int32(br.GetBits(32))
		if len(t.events) >= maxEvents {
			panic(ErrTableOverflow)
		}
		t.events = append(t.events, Event{Value: value})
		p = len(t.events) - 1
	} else {
		value = t.events[p].Value
	}
	t.incrementAndReorder(p)
	return value
}

// Sorted reports whether the table currently satisfies the non-increasing
// occurrence invariant and contains exactly one ESCAPE entry. It exists for
// tests and diagnostics.
func (t *Table) Sorted() bool {
	escapes := 0
	for i, e := range t.events {
		if i > 0 && t.events[i-1].Occurrences < e.Occurrences {
			return false
		}
		if e.Value == Escape {
			escapes++
		}
	}
	return escapes == 1
}
