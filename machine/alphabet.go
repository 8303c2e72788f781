// Package machine implements a rotor cipher machine: an ordered bank
// of rotating substitution wheels between a plugboard and a fixed
// reflector.  Running a letter in through the plugboard, forward
// through the rotors, off the reflector, back through the rotors, and
// out through the plugboard again makes every configuration its own
// inverse, so one machine state encrypts and decrypts symmetrically.
package machine

// AlphabetSize is the number of symbols the machine operates on.
const AlphabetSize = 26

// Alphabet is the fixed symbol set in index order.  All wiring tables
// and offset arithmetic are defined against it.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// mod reduces n into [0, AlphabetSize).  The added bias keeps the
// result non-negative for the negative intermediates the rotor offset
// math produces.
func mod(n int) int {
	return ((n % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// isLetter reports whether c is a symbol of the alphabet.
func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
