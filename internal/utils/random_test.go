package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	s := RandStringBytesMaskImpr(8)
	assert.Len(t, s, 8)

	for _, r := range s {
		assert.Contains(t, letterBytes, string(r))
	}

	// Not a strong guarantee, but two draws colliding would be suspicious
	assert.NotEqual(t, RandStringBytesMaskImpr(8), RandStringBytesMaskImpr(8))
}
