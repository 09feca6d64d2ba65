// Package vetspan provides provably in-bounds positional access into
// slices and utf8 text without re-checking bounds at access sites.
//
// A scope is opened with one of the Scope functions; inside it, the
// Container has two roles: it vets or gives out trusted indices and
// ranges, and it provides access to the underlying data through them.
// Every particle minted inside a scope is stamped with a tag unique to
// that invocation; a particle used against any other container is
// rejected. Go cannot brand values with an invariant type parameter
// per call, so the branding is a runtime tag and each consuming
// operation pays an O(1) tag comparison instead of a bounds check.
//
// Two particle kinds exist. Perfect particles (Index, Range) sit on
// item boundaries and may be dereferenced when they carry a NonEmpty
// proof. Simple particles (SimpleIndex, SimpleRange) are plain unit
// offsets: cheap to shift, never dereferenceable, upgraded explicitly
// through the container.
package vetspan

// Scope opens an indexing scope over a trusted backing array and runs
// f with the branded container. Particles minted inside are tied to
// this one invocation; the callback's return value flows out, but any
// particle smuggled out with it is unusable against every other
// container.
func Scope[Item, Slice, Out any](arr TrustedArray[Item, Slice], f func(*Container[Item, Slice]) Out) Out {
	return f(newContainer(arr))
}

// ScopeSlice opens a scope over a slice of fixed-width elements. Each
// element is one representational unit, so every in-bounds offset is
// an item boundary.
func ScopeSlice[T, Out any](data []T, f func(*Container[T, []T]) Out) Out {
	return Scope[T, []T, Out](sliceArray[T]{data: data}, f)
}

// ScopeString opens a scope over a utf8 string; items are single
// codepoints spanning 1 to 4 bytes. The text must be valid utf8.
func ScopeString[Out any](text string, f func(*Container[Character, string]) Out) Out {
	return Scope[Character, string, Out](textArray{data: text}, f)
}

// ScopeText opens a scope over utf8 bytes; items are single
// codepoints. The bytes must be valid utf8.
func ScopeText[Out any](text []byte, f func(*Container[Character, []byte]) Out) Out {
	return Scope[Character, []byte, Out](bytesArray{data: text}, f)
}

// ScopeSliceMut opens a read-write scope over a slice. The container
// is held exclusively for the duration of the callback; writes go
// through positions carrying a NonEmpty proof and cannot move item
// boundaries, so positions minted before a write stay valid.
func ScopeSliceMut[T, Out any](data []T, f func(*MutContainer[T]) Out) Out {
	c := &MutContainer[T]{data: data}
	c.Container = *newContainer[T, []T](sliceArray[T]{data: data})
	return f(c)
}
