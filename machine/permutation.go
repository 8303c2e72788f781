package machine

import "fmt"

// Permutation is a bijective mapping over the alphabet.  Entry i holds
// the image (as an alphabet index) of the i-th letter.  It models a
// fixed set of physical wires, so it never changes once built.
type Permutation [AlphabetSize]byte

// ParsePermutation builds a Permutation from a 26-letter wiring string
// such as "EKMFLGDQVZNTOWYHXUSPAIBRCJ".  Every letter of the alphabet
// must appear exactly once.
func ParsePermutation(wiring string) (Permutation, error) {
	var p Permutation
	if len(wiring) != AlphabetSize {
		return p, fmt.Errorf("%w: wiring %q must be %d letters long", ErrInvalidConfiguration, wiring, AlphabetSize)
	}
	var seen [AlphabetSize]bool
	for i := 0; i < AlphabetSize; i++ {
		c := wiring[i]
		if !isLetter(c) {
			return p, fmt.Errorf("%w: wiring %q contains %q", ErrInvalidConfiguration, wiring, c)
		}
		if seen[c-'A'] {
			return p, fmt.Errorf("%w: wiring %q maps to %q twice", ErrInvalidConfiguration, wiring, c)
		}
		seen[c-'A'] = true
		p[i] = c - 'A'
	}
	return p, nil
}

// Inverse returns the functional inverse of p.
func (p Permutation) Inverse() Permutation {
	var inv Permutation
	for i, v := range p {
		inv[v] = byte(i)
	}
	return inv
}

// String renders p as its wiring string.
func (p Permutation) String() string {
	b := make([]byte, AlphabetSize)
	for i, v := range p {
		b[i] = v + 'A'
	}
	return string(b)
}
