package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeddingIsOwner(t *testing.T) {
	w := &Wedding{ID: "w1", OwnerID: "u-owner"}

	assert.True(t, w.IsOwner("u-owner"))
	assert.False(t, w.IsOwner("u-alice"))
	assert.False(t, w.IsOwner(""))

	var empty *Wedding
	assert.False(t, empty.IsOwner("u-owner"))
}
