package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"lydian": 4, "dorian": 2, "ionian": 1}

	assert := assert.New(t)
	assert.Equal([]string{"dorian", "ionian", "lydian"}, SortedKeys(m))
	assert.Len(GetKeys(m), 3)
}

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(12, 12))
	assert.Equal(5, Mod(17, 12))
	assert.Equal(int8(10), Mod(int8(-2), int8(12)))
}
