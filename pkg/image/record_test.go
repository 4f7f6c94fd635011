package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTagDefaultsToLatest(t *testing.T) {
	assert.Equal(t, "latest", ResolveTag(""))
	assert.Equal(t, "v2", ResolveTag("v2"))
}

func TestDeriveIDStableAndSized(t *testing.T) {
	id1 := DeriveID("busybox", "latest")
	id2 := DeriveID("busybox", "latest")
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 12)

	id3 := DeriveID("busybox", "v2")
	assert.NotEqual(t, id1, id3)
}
