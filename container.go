package vetspan

import "github.com/rawbytedev/vetspan/internal/brand"

// Container is the sole gateway to a backing array inside a scope. It
// mints branded positions (Vet, Start, End, Full, Align) and consumes
// them for access (At, Slice). Access through a branded position does
// no bounds checking: constructing the position already proved it in
// bounds, so the only runtime cost at the access site is an O(1) tag
// equality check against the scope that minted it.
type Container[Item, Slice any] struct {
	tag  brand.Tag
	arr  TrustedArray[Item, Slice]
	unit bool
}

func newContainer[Item, Slice any](arr TrustedArray[Item, Slice]) *Container[Item, Slice] {
	_, unit := arr.(TrustedUnit)
	return &Container[Item, Slice]{tag: brand.New(), arr: arr, unit: unit}
}

// check rejects particles minted under a different scope. Using a
// position against the wrong container is a programmer defect.
func (c *Container[Item, Slice]) check(t brand.Tag) {
	if !c.tag.Match(t) {
		panic("vetspan: particle minted under a different scope")
	}
}

// mustItem rejects positions that do not carry a non-emptiness proof.
func (c *Container[Item, Slice]) mustItem(ix Index) {
	if ix.proof != NonEmpty {
		panic("vetspan: index carries no non-emptiness proof")
	}
}

func proofWhen(nonEmpty bool) Proof {
	if nonEmpty {
		return NonEmpty
	}
	return Unknown
}

// UnitLen is the container length in representational units.
func (c *Container[Item, Slice]) UnitLen() int { return c.arr.UnitLen() }

// IsEmpty reports whether the container holds no units.
func (c *Container[Item, Slice]) IsEmpty() bool { return c.UnitLen() == 0 }

// UnitItems reports whether items are single units, in which case
// position arithmetic can never land mid-item.
func (c *Container[Item, Slice]) UnitItems() bool { return c.unit }

// Start is the zero edge index.
func (c *Container[Item, Slice]) Start() Index { return newIndex(c.tag, 0, Unknown) }

// End is the one-past-the-end edge index.
func (c *Container[Item, Slice]) End() Index { return newIndex(c.tag, c.UnitLen(), Unknown) }

// Full is the whole-container range.
func (c *Container[Item, Slice]) Full() Range {
	return newRange(c.tag, 0, c.UnitLen(), Unknown)
}

// Untrusted is the backing data without the branding.
func (c *Container[Item, Slice]) Untrusted() Slice {
	return c.arr.SliceUnchecked(0, c.UnitLen())
}

// Vet turns an untrusted raw offset into a trusted index. The
// one-past-the-end offset vets with an Unknown proof; any other
// in-bounds offset must start an item and vets NonEmpty. Reports
// ErrOutOfBounds past the end and ErrInvalid mid-item.
func (c *Container[Item, Slice]) Vet(raw int) (Index, error) {
	return c.vet(raw)
}

func (c *Container[Item, Slice]) vet(raw int) (Index, error) {
	n := c.UnitLen()
	switch {
	case raw == n:
		return newIndex(c.tag, raw, Unknown), nil
	case raw >= 0 && raw < n:
		if !c.arr.Boundary(raw) {
			return Index{}, ErrInvalid
		}
		return newIndex(c.tag, raw, NonEmpty), nil
	default:
		return Index{}, ErrOutOfBounds
	}
}

// VetRange vets both ends independently; the first failure wins.
// Reversed bounds report ErrInvalid.
func (c *Container[Item, Slice]) VetRange(start, end int) (Range, error) {
	if start > end {
		return Range{}, ErrInvalid
	}
	s, err := c.vet(start)
	if err != nil {
		return Range{}, err
	}
	e, err := c.vet(end)
	if err != nil {
		return Range{}, err
	}
	return newRange(c.tag, s.off, e.off, Unknown), nil
}

// Align rounds an in-range offset down to the nearest item boundary,
// making it dereferenceable. The one-past-the-end offset is returned
// as the end edge.
func (c *Container[Item, Slice]) Align(raw int) (Index, error) {
	n := c.UnitLen()
	switch {
	case raw == n:
		return newIndex(c.tag, raw, Unknown), nil
	case raw >= 0 && raw < n:
		return newIndex(c.tag, c.arr.Align(raw), NonEmpty), nil
	default:
		return Index{}, ErrOutOfBounds
	}
}

// After is the edge just past the item starting at ix. Requires a
// NonEmpty proof.
func (c *Container[Item, Slice]) After(ix Index) Index {
	c.check(ix.tag)
	c.mustItem(ix)
	return newIndex(c.tag, ix.off+c.arr.Width(ix.off), Unknown)
}

// Advance steps to the next item boundary. False when there is no item
// after ix, i.e. when After(ix) would be the end edge.
func (c *Container[Item, Slice]) Advance(ix Index) (Index, bool) {
	c.check(ix.tag)
	n := c.UnitLen()
	if ix.off >= n {
		return Index{}, false
	}
	next := ix.off + c.arr.Width(ix.off)
	if next >= n {
		return Index{}, false
	}
	return newIndex(c.tag, next, NonEmpty), true
}

// Retreat steps to the previous item boundary. False at the start.
func (c *Container[Item, Slice]) Retreat(ix Index) (Index, bool) {
	c.check(ix.tag)
	if ix.off == 0 {
		return Index{}, false
	}
	return newIndex(c.tag, c.arr.Align(ix.off-1), NonEmpty), true
}

// AdvanceBy shifts ix forward n representational units and re-vets the
// result.
func (c *Container[Item, Slice]) AdvanceBy(ix Index, n int) (Index, error) {
	c.check(ix.tag)
	return c.vet(ix.off + n)
}

// DecreaseBy shifts ix back n representational units and re-vets the
// result.
func (c *Container[Item, Slice]) DecreaseBy(ix Index, n int) (Index, error) {
	c.check(ix.tag)
	return c.vet(ix.off - n)
}

// SplitAt partitions the container into [0, ix) and [ix, len). The two
// ranges cover the container in order; their proofs follow from
// whether ix touches an edge.
func (c *Container[Item, Slice]) SplitAt(ix Index) (front, back Range) {
	c.check(ix.tag)
	n := c.UnitLen()
	front = newRange(c.tag, 0, ix.off, proofWhen(ix.off > 0))
	back = newRange(c.tag, ix.off, n, proofWhen(ix.off < n))
	return front, back
}

// SplitAfter partitions the container into [0, after(ix)) and
// [after(ix), len), the first half covering the item at ix. Requires a
// NonEmpty proof.
func (c *Container[Item, Slice]) SplitAfter(ix Index) (front, back Range) {
	c.check(ix.tag)
	c.mustItem(ix)
	n := c.UnitLen()
	mid := ix.off + c.arr.Width(ix.off)
	front = newRange(c.tag, 0, mid, NonEmpty)
	back = newRange(c.tag, mid, n, proofWhen(mid < n))
	return front, back
}

// SplitAround partitions the container into [0, r.start), r and
// [r.end, len), preserving total coverage and order.
func (c *Container[Item, Slice]) SplitAround(r Range) (front, mid, back Range) {
	c.check(r.tag)
	n := c.UnitLen()
	front = newRange(c.tag, 0, r.start, proofWhen(r.start > 0))
	back = newRange(c.tag, r.end, n, proofWhen(r.end < n))
	return front, r, back
}

// Preceding is the range strictly before ix.
func (c *Container[Item, Slice]) Preceding(ix Index) Range {
	c.check(ix.tag)
	return newRange(c.tag, 0, ix.off, proofWhen(ix.off > 0))
}

// Following is the range strictly after the item at ix. Requires a
// NonEmpty proof.
func (c *Container[Item, Slice]) Following(ix Index) Range {
	c.check(ix.tag)
	c.mustItem(ix)
	n := c.UnitLen()
	mid := ix.off + c.arr.Width(ix.off)
	return newRange(c.tag, mid, n, proofWhen(mid < n))
}

// At fetches the item a NonEmpty index points at. The proof carried by
// ix justifies the access; no bounds are checked here.
func (c *Container[Item, Slice]) At(ix Index) Item {
	c.check(ix.tag)
	c.mustItem(ix)
	return c.arr.ItemUnchecked(ix.off)
}

// Slice fetches the units covered by r.
func (c *Container[Item, Slice]) Slice(r Range) Slice {
	c.check(r.tag)
	return c.arr.SliceUnchecked(r.start, r.end)
}

// SliceTo fetches the units before ix.
func (c *Container[Item, Slice]) SliceTo(ix Index) Slice {
	c.check(ix.tag)
	return c.arr.SliceUnchecked(0, ix.off)
}

// SliceFrom fetches the units from ix to the end.
func (c *Container[Item, Slice]) SliceFrom(ix Index) Slice {
	c.check(ix.tag)
	return c.arr.SliceUnchecked(ix.off, c.UnitLen())
}

// Upgrade vets a simple position against the item model, producing a
// perfect index. This is the only road from arithmetic positions back
// to dereferenceable ones.
func (c *Container[Item, Slice]) Upgrade(ix SimpleIndex) (Index, error) {
	c.check(ix.tag)
	return c.vet(ix.off)
}

// UpgradeRange vets both ends of a simple interval.
func (c *Container[Item, Slice]) UpgradeRange(r SimpleRange) (Range, error) {
	c.check(r.tag)
	return c.VetRange(r.start, r.end)
}

// AlignSimple rounds a simple position down to the nearest item
// boundary.
func (c *Container[Item, Slice]) AlignSimple(ix SimpleIndex) (Index, error) {
	c.check(ix.tag)
	return c.Align(ix.off)
}
