package interval

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSemitonesCoversLadder(t *testing.T) {
	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprintf("%d half steps", n), func(t *testing.T) {
			i, err := FromSemitones(n)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(n, i.Semitones())
			assert.True(i.Valid())
		})
	}
}

func TestFromSemitonesRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 13, 24} {
		_, err := FromSemitones(n)
		assert.True(t, errors.Is(err, ErrOutOfRange), "expected ErrOutOfRange for %d", n)
	}
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Minor 3rd", Minor3rd.String())
	assert.Equal("Tritone", Tritone.String())
	assert.Equal("P8", Octave.Short())
	assert.Equal("Interval(13)", Interval(13).String())
	assert.Len(All(), 13)
}
