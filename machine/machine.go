package machine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// MinRotors is the smallest rotor bank the machine accepts.
const MinRotors = 3

// Machine wires an ordered bank of rotors to a reflector and a
// plugboard and drives the per-keystroke signal path and stepping.
// The first rotor in the bank is the fast rotor: it steps on every
// keystroke and cascades toward the last.
//
// A Machine is not internally synchronized.  Concurrent calls on the
// same instance race on the rotor positions, so each instance must be
// owned by a single goroutine.
type Machine struct {
	rotors    []*Rotor
	reflector *Reflector
	plugboard *Plugboard
}

// New assembles a machine.  At least MinRotors rotors and a reflector
// are required; a nil plugboard stands in for a board with no cables.
func New(rotors []*Rotor, reflector *Reflector, plugboard *Plugboard) (*Machine, error) {
	if len(rotors) < MinRotors {
		return nil, fmt.Errorf("%w: %d rotors supplied, at least %d required", ErrInvalidConfiguration, len(rotors), MinRotors)
	}
	if reflector == nil {
		return nil, fmt.Errorf("%w: missing reflector", ErrInvalidConfiguration)
	}
	if plugboard == nil {
		plugboard, _ = NewPlugboard(nil)
	}
	return &Machine{rotors: rotors, reflector: reflector, plugboard: plugboard}, nil
}

// ProcessMessage runs a message through the machine one letter at a
// time.  Lowercase letters are folded to uppercase first.  Spaces pass
// through unchanged and do not advance the rotors.  Any other symbol
// fails the whole call with ErrInvalidCharacter before any letter is
// processed, so a rejected message never moves the rotors.
//
// Feeding the ciphertext to an identically configured machine at the
// same starting positions yields the plaintext back.
func (m *Machine) ProcessMessage(msg string) (string, error) {
	text := strings.ToUpper(msg)
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != ' ' && !isLetter(c) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, c, i)
		}
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			out[i] = ' '
			continue
		}
		c, err := m.processCharacter(text[i])
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// processCharacter runs one keystroke: plugboard in, forward through
// the bank, reflector, back through the bank, plugboard out, then the
// stepping cascade.  Positions are snapshotted first and restored only
// if the keystroke fails, so a successful keystroke always keeps its
// step and a failed one leaves the bank untouched.
func (m *Machine) processCharacter(c byte) (byte, error) {
	m.saveState()
	if !isLetter(c) {
		m.restoreState()
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}
	c = m.plugboard.Swap(c)
	for _, r := range m.rotors {
		c = r.EncodeForward(c)
	}
	c = m.reflector.Reflect(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].EncodeReverse(c)
	}
	c = m.plugboard.Swap(c)
	m.step()
	return c, nil
}

// step advances the fast rotor unconditionally and cascades down the
// bank for as long as each rotation lands exactly on its own notch.
func (m *Machine) step() {
	for _, r := range m.rotors {
		if !r.Rotate() {
			break
		}
	}
}

func (m *Machine) saveState() {
	for _, r := range m.rotors {
		r.saveState()
	}
}

func (m *Machine) restoreState() {
	for _, r := range m.rotors {
		r.restoreState()
	}
}

// Positions returns the current rotor positions, fast rotor first.
func (m *Machine) Positions() []int {
	positions := make([]int, len(m.rotors))
	for i, r := range m.rotors {
		positions[i] = r.Position()
	}
	return positions
}

// SetPositions re-arms every rotor, for example to decrypt a message
// with the starting positions its sender used.
func (m *Machine) SetPositions(positions []int) error {
	if len(positions) != len(m.rotors) {
		return fmt.Errorf("%w: %d positions supplied for %d rotors", ErrInvalidConfiguration, len(positions), len(m.rotors))
	}
	for _, p := range positions {
		if p < 0 || p >= AlphabetSize {
			return fmt.Errorf("%w: position %d out of range", ErrInvalidConfiguration, p)
		}
	}
	for i, r := range m.rotors {
		r.position = positions[i]
	}
	return nil
}

// Reset returns every rotor to the position it was constructed with.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.position = r.start
	}
}

// Fingerprint identifies the machine configuration - wirings, notches,
// ring settings, reflector, and plugboard - independent of the current
// rotor positions.  Saved rotor state is keyed by it.
func (m *Machine) Fingerprint() string {
	h := sha256.New()
	for _, r := range m.rotors {
		fmt.Fprintf(h, "%s|%d|%d\n", r.wiring, r.notch, r.ring)
	}
	fmt.Fprintf(h, "%s\n", m.reflector.wiring)
	fmt.Fprintf(h, "%s\n", strings.Join(m.plugboard.Pairs(), " "))
	return hex.EncodeToString(h.Sum(nil))
}
