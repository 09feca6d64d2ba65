package brand

import "testing"

func TestTagsAreUnique(t *testing.T) {
	a := New()
	b := New()
	if !a.Match(a) {
		t.Fatal("tag must match itself")
	}
	if a.Match(b) {
		t.Fatal("distinct invocations must not match")
	}
}

func TestZeroTag(t *testing.T) {
	var z Tag
	if !z.IsZero() {
		t.Fatal("zero value must report IsZero")
	}
	if New().IsZero() {
		t.Fatal("minted tag must not report IsZero")
	}
	if z.Match(New()) {
		t.Fatal("zero tag must not match a minted tag")
	}
}
