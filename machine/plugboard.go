package machine

import "fmt"

// Plugboard is the symmetric letter-pair swap applied before the
// signal enters the rotor bank and again after it leaves.  Unplugged
// letters map to themselves, so the board is always its own inverse.
type Plugboard struct {
	table [AlphabetSize]byte
}

// NewPlugboard builds a board from two-letter pair strings such as
// "AB".  A nil or empty list is the identity board.  Each letter may
// appear in at most one pair and a letter cannot pair with itself.
func NewPlugboard(pairs []string) (*Plugboard, error) {
	var pb Plugboard
	for i := range pb.table {
		pb.table[i] = byte(i)
	}
	var used [AlphabetSize]bool
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: plugboard pair %q must name two letters", ErrInvalidConfiguration, pair)
		}
		a, b := pair[0], pair[1]
		if !isLetter(a) || !isLetter(b) {
			return nil, fmt.Errorf("%w: plugboard pair %q contains a non-letter", ErrInvalidConfiguration, pair)
		}
		if a == b {
			return nil, fmt.Errorf("%w: plugboard pair %q plugs a letter into itself", ErrInvalidConfiguration, pair)
		}
		if used[a-'A'] || used[b-'A'] {
			return nil, fmt.Errorf("%w: plugboard pair %q reuses an already plugged letter", ErrInvalidConfiguration, pair)
		}
		used[a-'A'], used[b-'A'] = true, true
		pb.table[a-'A'] = b - 'A'
		pb.table[b-'A'] = a - 'A'
	}
	return &pb, nil
}

// Swap exchanges a letter with its plugged partner, or returns it
// unchanged when unplugged.
func (pb *Plugboard) Swap(c byte) byte {
	return pb.table[c-'A'] + 'A'
}

// Pairs returns the plugged pairs in canonical order, each pair with
// its lower letter first.
func (pb *Plugboard) Pairs() []string {
	var pairs []string
	for i, v := range pb.table {
		if int(v) > i {
			pairs = append(pairs, string([]byte{byte(i) + 'A', v + 'A'}))
		}
	}
	return pairs
}
