package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitImageRef(t *testing.T) {
	cases := []struct {
		ref      string
		wantName string
		wantTag  string
	}{
		{"busybox", "busybox", ""},
		{"busybox:latest", "busybox", "latest"},
		{"myregistry/busybox:v2", "myregistry/busybox", "v2"},
	}
	for _, c := range cases {
		name, tag := splitImageRef(c.ref)
		assert.Equal(t, c.wantName, name)
		assert.Equal(t, c.wantTag, tag)
	}
}

func TestRootfsForImageNameLegacyFallback(t *testing.T) {
	assert.Equal(t, legacyBusyboxRootfs, rootfsForImageName(""))
}
