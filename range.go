package vetspan

import (
	"fmt"

	"github.com/rawbytedev/vetspan/internal/brand"
)

// Range is a branded half-open interval [start, end) of unit offsets
// with start <= end at all times. A NonEmpty proof additionally
// guarantees start < end and that start is on an item boundary, so the
// range holds at least one whole item.
type Range struct {
	tag        brand.Tag
	start, end int
	proof      Proof
}

func newRange(tag brand.Tag, start, end int, proof Proof) Range {
	return Range{tag: tag, start: start, end: end, proof: proof}
}

// Untrusted is the raw start and end offsets without the branding.
func (r Range) Untrusted() (start, end int) { return r.start, r.end }

// Erased is this range without the emptiness proof.
func (r Range) Erased() Range {
	return newRange(r.tag, r.start, r.end, Unknown)
}

// Proof is the emptiness proof carried by this range.
func (r Range) Proof() Proof { return r.proof }

// Simple downgrades to an arithmetic interval.
func (r Range) Simple() SimpleRange {
	return SimpleRange{tag: r.tag, start: r.start, end: r.end, proof: r.proof}
}

// Len is the number of representational units covered.
func (r Range) Len() int { return r.end - r.start }

// IsEmpty reports whether the range covers no units.
func (r Range) IsEmpty() bool { return r.start >= r.end }

// NonEmpty attaches a non-emptiness proof, if the range holds at least
// one unit.
func (r Range) NonEmpty() (Range, bool) {
	if r.IsEmpty() {
		return Range{}, false
	}
	return newRange(r.tag, r.start, r.end, NonEmpty), true
}

// Start is the starting index; it carries this range's proof, so the
// start of a NonEmpty range is dereferenceable.
func (r Range) Start() Index { return newIndex(r.tag, r.start, r.proof) }

// End is the ending edge index.
func (r Range) End() Index { return newIndex(r.tag, r.end, Unknown) }

// Contains upgrades ix to a dereferenceable index if it falls inside
// this range.
func (r Range) Contains(ix Index) (Index, bool) {
	mustMatch(r.tag, ix.tag)
	if r.start <= ix.off && ix.off < r.end {
		return newIndex(r.tag, ix.off, NonEmpty), true
	}
	return Index{}, false
}

// SplitAt splits the range at an index; the second half begins at the
// index. False if the index lies outside the range.
func (r Range) SplitAt(ix Index) (front, back Range, ok bool) {
	mustMatch(r.tag, ix.tag)
	if ix.off < r.start || ix.off > r.end {
		return Range{}, Range{}, false
	}
	front = newRange(r.tag, r.start, ix.off, Unknown)
	back = newRange(r.tag, ix.off, r.end, Unknown)
	return front, back, true
}

// Join concatenates two exactly adjacent ranges (no gap, no overlap,
// in order). The proofs combine: the result is NonEmpty if either half
// was.
func (r Range) Join(o Range) (Range, bool) {
	mustMatch(r.tag, o.tag)
	if r.end != o.start {
		return Range{}, false
	}
	return newRange(r.tag, r.start, o.end, CombineProof(r.proof, o.proof)), true
}

// JoinCover extends this range to cover o as well, including any gap
// between the two. The proofs combine as in Join.
func (r Range) JoinCover(o Range) Range {
	mustMatch(r.tag, o.tag)
	return newRange(r.tag, min(r.start, o.start), max(r.end, o.end), CombineProof(r.proof, o.proof))
}

// ExtendStart moves the start back to ix if it precedes the current
// start. The proof is kept: the start only moves to another boundary.
func (r Range) ExtendStart(ix Index) Range {
	mustMatch(r.tag, ix.tag)
	return newRange(r.tag, min(r.start, ix.off), r.end, r.proof)
}

// ExtendEnd moves the end out to ix if it is beyond the current end.
func (r Range) ExtendEnd(ix Index) Range {
	mustMatch(r.tag, ix.tag)
	return newRange(r.tag, r.start, max(r.end, ix.off), r.proof)
}

// Frontiers are the two empty ranges at the edges of this range.
func (r Range) Frontiers() (front, back Range) {
	return r.Start().Singleton(), r.End().Singleton()
}

// Equal reports whether both ranges cover the same offsets. The proof
// is ignored.
func (r Range) Equal(o Range) bool {
	mustMatch(r.tag, o.tag)
	return r.start == o.start && r.end == o.end
}

func (r Range) String() string {
	return fmt.Sprintf("Range(%d..%d, %v)", r.start, r.end, r.proof)
}
