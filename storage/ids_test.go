package storage

import (
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
)

func TestNextId(t *testing.T) {
	t.Parallel()

	// Uniqueness can't really be proven, but a large batch shouldn't collide.
	numIds := 100000
	seen := make(map[string]bool)
	for i := range numIds {
		id := NextId()
		if !seen[id] {
			seen[id] = true
		} else {
			t.Errorf("ID %s is repeated on loop %d", id, i)
		}
	}
}

func TestNextIdIsKsuid(t *testing.T) {
	t.Parallel()

	id, err := ksuid.Parse(NextId())
	assert.NoError(t, err)
	assert.False(t, id.IsNil())
}
