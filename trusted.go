package vetspan

// TrustedContainer exposes the shape of a backing array in
// representational units, plus raw access keyed by unit offsets. The
// unchecked accessors are only ever called with offsets proven by the
// item model, so they perform no bounds logic of their own.
type TrustedContainer[Item, Slice any] interface {
	// UnitLen is the length in representational units.
	UnitLen() int
	// ItemUnchecked returns the item starting at a proven boundary
	// offset, off < UnitLen.
	ItemUnchecked(off int) Item
	// SliceUnchecked returns the units in [start, end); both ends are
	// proven boundaries with start <= end <= UnitLen.
	SliceUnchecked(start, end int) Slice
}

// TrustedItem supplies the boundary logic for a container's items.
// This is the only place real bounds reasoning happens; everything the
// container hands out is derived from these three operations.
type TrustedItem interface {
	// Boundary reports whether off starts an item. off < UnitLen.
	Boundary(off int) bool
	// Width is the unit count of the item starting at off, which must
	// be a proven boundary with off < UnitLen.
	Width(off int) int
	// Align returns the nearest item boundary at or before off.
	// off < UnitLen.
	Align(off int) int
}

// TrustedUnit marks item models whose items are exactly one unit wide.
// For these, position arithmetic can never leave an item boundary.
type TrustedUnit interface {
	TrustedItem
	// Unit is a marker with no behaviour.
	Unit()
}

// TrustedArray is the full capability a backing array presents when a
// scope opens over it.
type TrustedArray[Item, Slice any] interface {
	TrustedContainer[Item, Slice]
	TrustedItem
}

// sliceArray adapts []T: every element is a single-unit item.
type sliceArray[T any] struct {
	data []T
}

func (a sliceArray[T]) UnitLen() int { return len(a.data) }

func (a sliceArray[T]) ItemUnchecked(off int) T { return a.data[off] }

func (a sliceArray[T]) SliceUnchecked(start, end int) []T { return a.data[start:end:end] }

func (sliceArray[T]) Boundary(off int) bool { return true }

func (sliceArray[T]) Width(off int) int { return 1 }

func (sliceArray[T]) Align(off int) int { return off }

func (sliceArray[T]) Unit() {}
