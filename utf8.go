package vetspan

import "unicode/utf8"

// Character is a utf8 text span of exactly one codepoint, 1 to 4 bytes
// wide. It is produced by indexing a text container with a NonEmpty
// index.
type Character string

func (c Character) String() string { return string(c) }

// Len is the encoded width in bytes.
func (c Character) Len() int { return len(c) }

// Rune is the codepoint this character spans.
func (c Character) Rune() rune {
	r, _ := utf8.DecodeRuneInString(string(c))
	return r
}

// leadingByte reports whether b starts a utf8 sequence: 0xxxxxxx,
// 110xxxxx, 1110xxxx or 11110xxx. Interpreted as a signed byte this is
// b >= -64.
func leadingByte(b byte) bool {
	return int8(b) >= -0x40
}

// textArray adapts a utf8 string; items are single codepoints and the
// representational unit is the byte. The text must be valid utf8: the
// boundary logic relies on byte 0 of valid utf8 being a leading byte.
type textArray struct {
	data string
}

func (a textArray) UnitLen() int { return len(a.data) }

func (a textArray) ItemUnchecked(off int) Character {
	_, size := utf8.DecodeRuneInString(a.data[off:])
	return Character(a.data[off : off+size])
}

func (a textArray) SliceUnchecked(start, end int) string { return a.data[start:end] }

func (a textArray) Boundary(off int) bool { return leadingByte(a.data[off]) }

func (a textArray) Width(off int) int {
	_, size := utf8.DecodeRuneInString(a.data[off:])
	return size
}

func (a textArray) Align(off int) int {
	// A codepoint is at most utf8.UTFMax bytes, so a leading byte sits
	// within 3 steps of any in-range offset of valid utf8.
	for back := 0; back < utf8.UTFMax && back <= off; back++ {
		if leadingByte(a.data[off-back]) {
			return off - back
		}
	}
	panic("vetspan: corrupt utf8: no leading byte within 3 bytes")
}

// bytesArray adapts utf8 bytes; boundary rules match textArray.
type bytesArray struct {
	data []byte
}

func (a bytesArray) UnitLen() int { return len(a.data) }

func (a bytesArray) ItemUnchecked(off int) Character {
	_, size := utf8.DecodeRune(a.data[off:])
	return Character(a.data[off : off+size])
}

func (a bytesArray) SliceUnchecked(start, end int) []byte { return a.data[start:end:end] }

func (a bytesArray) Boundary(off int) bool { return leadingByte(a.data[off]) }

func (a bytesArray) Width(off int) int {
	_, size := utf8.DecodeRune(a.data[off:])
	return size
}

func (a bytesArray) Align(off int) int {
	for back := 0; back < utf8.UTFMax && back <= off; back++ {
		if leadingByte(a.data[off-back]) {
			return off - back
		}
	}
	panic("vetspan: corrupt utf8: no leading byte within 3 bytes")
}
