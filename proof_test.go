package vetspan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineProof(t *testing.T) {
	assert.Equal(t, Unknown, CombineProof(Unknown, Unknown))
	assert.Equal(t, NonEmpty, CombineProof(NonEmpty, Unknown))
	assert.Equal(t, NonEmpty, CombineProof(Unknown, NonEmpty))
	assert.Equal(t, NonEmpty, CombineProof(NonEmpty, NonEmpty))
}

func TestProofString(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "NonEmpty", NonEmpty.String())
}
