package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotorForwardKnownValues(t *testing.T) {
	assert := assert.New(t)

	// Wheel I at position 0, ring 0 maps A to E.
	r, err := NewRotor(RotorPresets["I"].Wiring, 16, 0, 0)
	require.NoError(t, err)
	assert.Equal(byte('E'), r.EncodeForward('A'))

	// Advanced one step it maps A to J.
	require.NoError(t, r.SetPosition(1))
	assert.Equal(byte('J'), r.EncodeForward('A'))

	// Wheel I at position 0 with ring setting 1 maps A to K.
	r, err = NewRotor(RotorPresets["I"].Wiring, 16, 1, 0)
	require.NoError(t, err)
	assert.Equal(byte('K'), r.EncodeForward('A'))
}

func TestRotorReverseInvertsForward(t *testing.T) {
	assert := assert.New(t)
	for _, ring := range []int{0, 2, 20, 25} {
		for _, position := range []int{0, 1, 5, 13, 25} {
			r, err := NewRotor(RotorPresets["II"].Wiring, 4, ring, position)
			require.NoError(t, err)
			for i := 0; i < AlphabetSize; i++ {
				c := byte('A' + i)
				assert.Equal(c, r.EncodeReverse(r.EncodeForward(c)),
					"ring %d position %d letter %c", ring, position, c)
				assert.Equal(c, r.EncodeForward(r.EncodeReverse(c)),
					"ring %d position %d letter %c", ring, position, c)
			}
		}
	}
}

func TestRotorRotateSignalsNotch(t *testing.T) {
	assert := assert.New(t)
	r, err := NewRotor(Alphabet, 3, 0, 1)
	require.NoError(t, err)

	assert.False(r.Rotate()) // position 2
	assert.True(r.Rotate())  // position 3, the notch
	assert.False(r.Rotate()) // position 4
	assert.Equal(4, r.Position())
}

func TestRotorRotateWrapsAround(t *testing.T) {
	assert := assert.New(t)
	r, err := NewRotor(Alphabet, 0, 0, 25)
	require.NoError(t, err)
	assert.True(r.Rotate())
	assert.Equal(0, r.Position())
}

func TestRotorConstructionRejectsBadRanges(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		name                  string
		notch, ring, position int
	}{
		{"notch too low", -1, 0, 0},
		{"notch too high", AlphabetSize, 0, 0},
		{"ring too low", 0, -1, 0},
		{"ring too high", 0, AlphabetSize, 0},
		{"position too low", 0, 0, -1},
		{"position too high", 0, 0, AlphabetSize},
	}
	for _, tc := range cases {
		_, err := NewRotor(Alphabet, tc.notch, tc.ring, tc.position)
		assert.ErrorIs(err, ErrInvalidConfiguration, tc.name)
	}
	_, err := NewRotor("NOT A PERMUTATION", 0, 0, 0)
	assert.ErrorIs(err, ErrInvalidConfiguration)
}

func TestRotorSaveAndRestoreState(t *testing.T) {
	assert := assert.New(t)
	r, err := NewRotor(RotorPresets["III"].Wiring, 21, 0, 7)
	require.NoError(t, err)
	r.saveState()
	r.Rotate()
	r.Rotate()
	assert.Equal(9, r.Position())
	r.restoreState()
	assert.Equal(7, r.Position())
}
