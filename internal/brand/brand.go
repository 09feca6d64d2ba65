package brand

import "github.com/google/uuid"

// Tag identifies a single indexing scope invocation. Positions and the
// container minted inside one scope all carry the same tag; tags from
// different invocations never match, even over identical backing data.
type Tag struct {
	id uuid.UUID
}

// New returns a tag that matches no previously created tag.
func New() Tag {
	return Tag{id: uuid.New()}
}

// Match reports whether two tags come from the same scope invocation.
func (t Tag) Match(o Tag) bool {
	return t.id == o.id
}

// IsZero reports whether the tag was never minted by New.
func (t Tag) IsZero() bool {
	return t.id == uuid.Nil
}

func (t Tag) String() string {
	return t.id.String()
}
