package cgroups

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharesToWeight(t *testing.T) {
	cases := []struct {
		shares string
		want   int64
	}{
		{"1024", 100},
		{"2048", 200},
		{"10", 1},             // clamped to the floor
		{"not-a-number", 100}, // defaults to 1024 shares
		{"1000000", 10000},    // clamped to the ceiling
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SharesToWeight(c.shares), "shares=%s", c.shares)
	}
}
