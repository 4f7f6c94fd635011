package container

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allDigits = regexp.MustCompile(`^[0-9]{10}$`)

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	assert.Len(t, id, 10)
	assert.Regexp(t, allDigits, id)
}

func TestGenerateIDFormatAcrossCalls(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, allDigits, GenerateID())
	}
}
