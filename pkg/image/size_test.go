package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0B"},
		{2048, "2.0KB"},
		{2621440, "2.5MB"},
		{1073741824, "1.0GB"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatSize(c.bytes))
	}
}
