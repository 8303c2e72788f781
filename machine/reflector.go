package machine

// Reflector is the fixed wheel at the far end of the rotor bank.  It
// has no moving state.  A historical reflector is an involution (all
// letters in mutual pairs, none mapped to itself); only bijectivity is
// enforced here, involution is up to the supplied wiring.
type Reflector struct {
	wiring Permutation
}

// NewReflector builds a reflector from a 26-letter wiring string.
func NewReflector(wiring string) (*Reflector, error) {
	p, err := ParsePermutation(wiring)
	if err != nil {
		return nil, err
	}
	return &Reflector{wiring: p}, nil
}

// Reflect bounces a letter back into the rotor bank.
func (rf *Reflector) Reflect(c byte) byte {
	return rf.wiring[c-'A'] + 'A'
}
