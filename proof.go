package vetspan

// Proof is the emptiness marker carried by indices and ranges. A
// NonEmpty index starts a real item; a NonEmpty range holds at least
// one item. Unknown carries no such guarantee (an Unknown index may be
// the one-past-the-end edge).
type Proof uint8

const (
	Unknown Proof = iota
	NonEmpty
)

// CombineProof merges the proofs of two joined ranges: the combined
// span holds an item if either half did.
func CombineProof(p, q Proof) Proof {
	if p == NonEmpty || q == NonEmpty {
		return NonEmpty
	}
	return Unknown
}

func (p Proof) String() string {
	if p == NonEmpty {
		return "NonEmpty"
	}
	return "Unknown"
}
