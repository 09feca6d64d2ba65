package vetspan

import (
	"fmt"

	"github.com/rawbytedev/vetspan/internal/brand"
)

// Index is a branded position on an item boundary of the container
// minted under the same scope. An Index with a NonEmpty proof starts a
// real item and may be dereferenced; with an Unknown proof it may be
// the one-past-the-end edge and can only delimit slices.
//
// Indices are plain values: copy, compare and discard them freely.
// They hold no reference to the backing data.
type Index struct {
	tag   brand.Tag
	off   int
	proof Proof
}

func newIndex(tag brand.Tag, off int, proof Proof) Index {
	return Index{tag: tag, off: off, proof: proof}
}

// Untrusted is the raw unit offset without the branding.
func (ix Index) Untrusted() int { return ix.off }

// Erased is this index without the emptiness proof.
func (ix Index) Erased() Index {
	return newIndex(ix.tag, ix.off, Unknown)
}

// Proof is the emptiness proof carried by this index.
func (ix Index) Proof() Proof { return ix.proof }

// Simple downgrades to an arithmetic position.
func (ix Index) Simple() SimpleIndex {
	return SimpleIndex{tag: ix.tag, off: ix.off, proof: ix.proof}
}

// Singleton is the empty range sitting at this index.
func (ix Index) Singleton() Range {
	return newRange(ix.tag, ix.off, ix.off, Unknown)
}

// Compare orders two indices from the same scope by offset: -1, 0 or
// +1. The proof is ignored. Panics if the indices were minted under
// different scopes.
func (ix Index) Compare(o Index) int {
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

// Equal reports whether both indices denote the same offset.
func (ix Index) Equal(o Index) bool { return ix.Compare(o) == 0 }

// Less reports whether ix precedes o.
func (ix Index) Less(o Index) bool { return ix.Compare(o) < 0 }

func (ix Index) String() string {
	return fmt.Sprintf("Index(%d, %v)", ix.off, ix.proof)
}

// mustMatch rejects particles minted under different scope invocations.
// Mixing scopes is a programmer defect, not a recoverable condition.
func mustMatch(a, b brand.Tag) {
	if !a.Match(b) {
		panic("vetspan: particles minted under different scopes")
	}
}
