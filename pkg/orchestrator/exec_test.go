package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNamespaceEntryOrder pins down the required ordering: pid must precede
// mnt so the mnt namespace's /proc view is consistent.
func TestNamespaceEntryOrder(t *testing.T) {
	assert.Equal(t, []string{"ipc", "uts", "net", "pid", "mnt"}, nsEntryOrder)
}

func TestParseEnvironSplitsOnNUL(t *testing.T) {
	// /proc/1/environ is often unreadable for a non-root test runner; the
	// test skips in that case.
	env, err := parseEnviron(1)
	if err != nil {
		t.Skipf("cannot read /proc/1/environ in this sandbox: %v", err)
	}
	for _, e := range env {
		assert.NotContains(t, e, "\x00")
	}
}
