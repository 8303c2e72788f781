package machine

import "errors"

var (
	// ErrInvalidConfiguration is returned when a machine cannot be
	// built: fewer than three rotors, a wiring string that is not a
	// permutation of the alphabet, an out-of-range notch, ring
	// setting, or position, or a malformed plugboard pairing.
	ErrInvalidConfiguration = errors.New("machine: invalid configuration")

	// ErrInvalidCharacter is returned when a message contains a
	// symbol other than A-Z or space.  No partial output is produced.
	ErrInvalidCharacter = errors.New("machine: invalid character")
)
