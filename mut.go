package vetspan

// MutContainer extends the read container over a unit-item slice with
// exclusive write access. Items are single units, so writes replace
// whole items and never invalidate outstanding positions. Text
// containers have no mutable form: replacing a codepoint can change
// its encoded width and move every boundary after it.
type MutContainer[T any] struct {
	Container[T, []T]
	data []T
}

// Set writes v at a NonEmpty index.
func (c *MutContainer[T]) Set(ix Index, v T) {
	c.check(ix.tag)
	c.mustItem(ix)
	c.data[ix.off] = v
}

// Swap exchanges the items at two NonEmpty indices.
func (c *MutContainer[T]) Swap(i, j Index) {
	c.check(i.tag)
	c.check(j.tag)
	c.mustItem(i)
	c.mustItem(j)
	c.data[i.off], c.data[j.off] = c.data[j.off], c.data[i.off]
}
