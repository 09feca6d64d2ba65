package vetspan

import (
	"fmt"

	"github.com/rawbytedev/vetspan/internal/brand"
)

// SimpleIndex is a position known only to be a unit offset, not
// necessarily on an item boundary. It is cheap to shift around with
// plain arithmetic but never dereferenceable: upgrade it through
// Container.Upgrade or Container.AlignSimple first. There is no
// implicit coercion back to Index.
type SimpleIndex struct {
	tag   brand.Tag
	off   int
	proof Proof
}

// Untrusted is the raw unit offset without the branding.
func (ix SimpleIndex) Untrusted() int { return ix.off }

// Erased is this position without the emptiness proof.
func (ix SimpleIndex) Erased() SimpleIndex {
	return SimpleIndex{tag: ix.tag, off: ix.off, proof: Unknown}
}

// Proof is the emptiness proof carried by this position.
func (ix SimpleIndex) Proof() Proof { return ix.proof }

// Shift moves the position by n units. The result carries no proof:
// it may point mid-item or outside the unit range.
func (ix SimpleIndex) Shift(n int) SimpleIndex {
	return SimpleIndex{tag: ix.tag, off: ix.off + n, proof: Unknown}
}

// Next is the position one unit after this one.
func (ix SimpleIndex) Next() SimpleIndex { return ix.Shift(1) }

// Singleton is the empty interval sitting at this position.
func (ix SimpleIndex) Singleton() SimpleRange {
	return SimpleRange{tag: ix.tag, start: ix.off, end: ix.off, proof: Unknown}
}

// Compare orders two positions from the same scope by offset.
func (ix SimpleIndex) Compare(o SimpleIndex) int {
	mustMatch(ix.tag, o.tag)
	switch {
	case ix.off < o.off:
		return -1
	case ix.off > o.off:
		return +1
	default:
		return 0
	}
}

// Equal reports whether both positions denote the same offset.
func (ix SimpleIndex) Equal(o SimpleIndex) bool { return ix.Compare(o) == 0 }

// Less reports whether ix precedes o.
func (ix SimpleIndex) Less(o SimpleIndex) bool { return ix.Compare(o) < 0 }

func (ix SimpleIndex) String() string {
	return fmt.Sprintf("SimpleIndex(%d, %v)", ix.off, ix.proof)
}

// SimpleRange is a branded interval of unit offsets without boundary
// guarantees, start <= end. Dereference requires upgrading through
// Container.UpgradeRange.
type SimpleRange struct {
	tag        brand.Tag
	start, end int
	proof      Proof
}

// Untrusted is the raw start and end offsets without the branding.
func (r SimpleRange) Untrusted() (start, end int) { return r.start, r.end }

// Erased is this interval without the emptiness proof.
func (r SimpleRange) Erased() SimpleRange {
	return SimpleRange{tag: r.tag, start: r.start, end: r.end, proof: Unknown}
}

// Proof is the emptiness proof carried by this interval.
func (r SimpleRange) Proof() Proof { return r.proof }

// Len is the number of representational units covered.
func (r SimpleRange) Len() int { return r.end - r.start }

// IsEmpty reports whether the interval covers no units.
func (r SimpleRange) IsEmpty() bool { return r.start >= r.end }

// NonEmpty attaches a non-emptiness proof, if the interval holds at
// least one unit.
func (r SimpleRange) NonEmpty() (SimpleRange, bool) {
	if r.IsEmpty() {
		return SimpleRange{}, false
	}
	return SimpleRange{tag: r.tag, start: r.start, end: r.end, proof: NonEmpty}, true
}

// Start is the starting position, carrying this interval's proof.
func (r SimpleRange) Start() SimpleIndex {
	return SimpleIndex{tag: r.tag, off: r.start, proof: r.proof}
}

// End is the ending edge position.
func (r SimpleRange) End() SimpleIndex {
	return SimpleIndex{tag: r.tag, off: r.end, proof: Unknown}
}

// Vet returns a position inside this interval for raw, if raw falls
// within it.
func (r SimpleRange) Vet(raw int) (SimpleIndex, bool) {
	if r.start <= raw && raw < r.end {
		return SimpleIndex{tag: r.tag, off: raw, proof: NonEmpty}, true
	}
	return SimpleIndex{}, false
}

// VetOrEnd is Vet, additionally accepting the interval's own end.
func (r SimpleRange) VetOrEnd(raw int) (SimpleIndex, bool) {
	if r.start <= raw && raw <= r.end {
		return SimpleIndex{tag: r.tag, off: raw, proof: Unknown}, true
	}
	return SimpleIndex{}, false
}

// Contains reports whether ix falls inside this interval.
func (r SimpleRange) Contains(ix SimpleIndex) bool {
	mustMatch(r.tag, ix.tag)
	return r.start <= ix.off && ix.off < r.end
}

// SplitAt splits the interval at a position; the second half begins at
// the position. False if it lies outside the interval.
func (r SimpleRange) SplitAt(ix SimpleIndex) (front, back SimpleRange, ok bool) {
	mustMatch(r.tag, ix.tag)
	if ix.off < r.start || ix.off > r.end {
		return SimpleRange{}, SimpleRange{}, false
	}
	front = SimpleRange{tag: r.tag, start: r.start, end: ix.off, proof: Unknown}
	back = SimpleRange{tag: r.tag, start: ix.off, end: r.end, proof: Unknown}
	return front, back, true
}

// Join concatenates two exactly adjacent intervals; proofs combine.
func (r SimpleRange) Join(o SimpleRange) (SimpleRange, bool) {
	mustMatch(r.tag, o.tag)
	if r.end != o.start {
		return SimpleRange{}, false
	}
	return SimpleRange{tag: r.tag, start: r.start, end: o.end, proof: CombineProof(r.proof, o.proof)}, true
}

// JoinCover extends this interval to cover o, including any gap
// between; proofs combine.
func (r SimpleRange) JoinCover(o SimpleRange) SimpleRange {
	mustMatch(r.tag, o.tag)
	return SimpleRange{
		tag:   r.tag,
		start: min(r.start, o.start),
		end:   max(r.end, o.end),
		proof: CombineProof(r.proof, o.proof),
	}
}

// Frontiers are the two empty intervals at the edges of this interval.
func (r SimpleRange) Frontiers() (front, back SimpleRange) {
	return r.Start().Singleton(), r.End().Singleton()
}

// Equal reports whether both intervals cover the same offsets.
func (r SimpleRange) Equal(o SimpleRange) bool {
	mustMatch(r.tag, o.tag)
	return r.start == o.start && r.end == o.end
}

func (r SimpleRange) String() string {
	return fmt.Sprintf("SimpleRange(%d..%d, %v)", r.start, r.end, r.proof)
}
