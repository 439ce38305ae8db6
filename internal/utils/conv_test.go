package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 0, StringToInt("nope"))
	assert.Equal(t, 0, StringToInt(""))
	assert.Equal(t, -7, StringToInt("-7"))
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
	assert.Equal(t, 1, ParsePage("banana"))
	assert.Equal(t, 1, ParsePage(""))
}
