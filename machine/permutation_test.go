package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermutationIdentity(t *testing.T) {
	assert := assert.New(t)
	p, err := ParsePermutation(Alphabet)
	require.NoError(t, err)
	for i := 0; i < AlphabetSize; i++ {
		assert.Equal(byte(i), p[i])
	}
	assert.Equal(Alphabet, p.String())
}

func TestParsePermutationRejectsBadWirings(t *testing.T) {
	assert := assert.New(t)
	cases := []struct {
		name   string
		wiring string
	}{
		{"too short", "ABC"},
		{"too long", Alphabet + "A"},
		{"duplicate letter", "AACDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"all one letter", strings.Repeat("Q", AlphabetSize)},
		{"lowercase", "abcdefghijklmnopqrstuvwxyz"},
		{"digit", "1BCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}
	for _, tc := range cases {
		_, err := ParsePermutation(tc.wiring)
		assert.ErrorIs(err, ErrInvalidConfiguration, tc.name)
	}
}

func TestPermutationInverseComposesToIdentity(t *testing.T) {
	assert := assert.New(t)
	p, err := ParsePermutation(RotorPresets["I"].Wiring)
	require.NoError(t, err)
	inv := p.Inverse()
	for i := 0; i < AlphabetSize; i++ {
		assert.Equal(byte(i), inv[p[i]])
		assert.Equal(byte(i), p[inv[i]])
	}
}
