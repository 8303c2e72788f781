package machine

import "fmt"

// Rotor is one rotating substitution wheel.  Its wiring is fixed but
// turns relative to the stationary entry and exit contacts, so the
// substitution it performs depends on the current position and the
// ring setting.  The inverse wiring is derived once at construction
// for the return path through the bank.
type Rotor struct {
	wiring  Permutation
	inverse Permutation
	notch   int
	ring    int
	start   int

	position int
	saved    int
}

// NewRotor builds a rotor from its wiring string, the notch index that
// triggers the next rotor in the bank, the ring setting, and the
// starting position.  Notch, ring, and position must all lie in
// [0, AlphabetSize).
func NewRotor(wiring string, notch, ring, position int) (*Rotor, error) {
	p, err := ParsePermutation(wiring)
	if err != nil {
		return nil, err
	}
	if notch < 0 || notch >= AlphabetSize {
		return nil, fmt.Errorf("%w: notch %d out of range", ErrInvalidConfiguration, notch)
	}
	if ring < 0 || ring >= AlphabetSize {
		return nil, fmt.Errorf("%w: ring setting %d out of range", ErrInvalidConfiguration, ring)
	}
	if position < 0 || position >= AlphabetSize {
		return nil, fmt.Errorf("%w: position %d out of range", ErrInvalidConfiguration, position)
	}
	return &Rotor{
		wiring:   p,
		inverse:  p.Inverse(),
		notch:    notch,
		ring:     ring,
		start:    position,
		position: position,
		saved:    position,
	}, nil
}

// EncodeForward passes a letter through the wiring entry-side first.
// The rotation offset (position less ring setting) is applied going in
// and undone coming out, which is how the turning wiring core behaves
// between the fixed contact rings.
func (r *Rotor) EncodeForward(c byte) byte {
	in := mod(int(c-'A') + r.position - r.ring)
	out := mod(int(r.wiring[in]) - r.position + r.ring)
	return byte(out) + 'A'
}

// EncodeReverse passes a letter back through the wiring exit-side
// first.  For any fixed position and ring setting it is the exact
// inverse of EncodeForward.
func (r *Rotor) EncodeReverse(c byte) byte {
	in := mod(int(c-'A') + r.position - r.ring)
	out := mod(int(r.inverse[in]) - r.position + r.ring)
	return byte(out) + 'A'
}

// Rotate advances the rotor one step and reports whether it landed on
// its notch, signaling that the next rotor in the bank should turn too.
func (r *Rotor) Rotate() bool {
	r.position = (r.position + 1) % AlphabetSize
	return r.position == r.notch
}

// Position returns the current rotational offset.
func (r *Rotor) Position() int {
	return r.position
}

// SetPosition moves the rotor to an absolute position.
func (r *Rotor) SetPosition(position int) error {
	if position < 0 || position >= AlphabetSize {
		return fmt.Errorf("%w: position %d out of range", ErrInvalidConfiguration, position)
	}
	r.position = position
	return nil
}

// saveState snapshots the position so a failed keystroke can be
// rolled back.  Only the position moves at runtime.
func (r *Rotor) saveState() {
	r.saved = r.position
}

// restoreState rewinds the rotor to the last snapshot.
func (r *Rotor) restoreState() {
	r.position = r.saved
}
