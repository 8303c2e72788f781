package machine

import (
	"crypto/sha256"
	"fmt"
)

// RotorSpec describes one rotor slot of a machine configuration.  A
// preset Name overrides Wiring and Notch; otherwise the wiring string
// and notch index are taken as given.
type RotorSpec struct {
	Name     string `mapstructure:"name"`
	Wiring   string `mapstructure:"wiring"`
	Notch    int    `mapstructure:"notch"`
	Ring     int    `mapstructure:"ring"`
	Position int    `mapstructure:"position"`
}

// Config is the construction input for a Machine.  Rotor order is
// fast rotor first.  Reflector is a preset name or a 26-letter wiring
// string; Plugboard lists two-letter pairs such as "AB".
type Config struct {
	Rotors    []RotorSpec `mapstructure:"rotors"`
	Reflector string      `mapstructure:"reflector"`
	Plugboard []string    `mapstructure:"plugboard"`
}

// Build assembles the configured machine, failing with
// ErrInvalidConfiguration if any part of the configuration is
// malformed.  A failed build leaves nothing usable behind.
func (c Config) Build() (*Machine, error) {
	rotors := make([]*Rotor, 0, len(c.Rotors))
	for _, spec := range c.Rotors {
		wiring, notch := spec.Wiring, spec.Notch
		if spec.Name != "" {
			preset, ok := RotorPresets[spec.Name]
			if !ok {
				return nil, fmt.Errorf("%w: unknown rotor preset %q", ErrInvalidConfiguration, spec.Name)
			}
			wiring, notch = preset.Wiring, preset.Notch
		}
		r, err := NewRotor(wiring, notch, spec.Ring, spec.Position)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, r)
	}
	reflWiring := c.Reflector
	if w, ok := ReflectorPresets[c.Reflector]; ok {
		reflWiring = w
	}
	reflector, err := NewReflector(reflWiring)
	if err != nil {
		return nil, err
	}
	plugboard, err := NewPlugboard(c.Plugboard)
	if err != nil {
		return nil, err
	}
	return New(rotors, reflector, plugboard)
}

// ConfigFromSecret derives a complete machine configuration from a
// shared passphrase.  The derivation is deterministic, so two parties
// holding only the passphrase arrive at the same machine: three
// distinct preset wheels with rings and positions, reflector B, and
// six plug cables.
func ConfigFromSecret(secret []byte) Config {
	d1 := sha256.Sum256(secret)
	d2 := sha256.Sum256(d1[:])
	stream := append(d1[:], d2[:]...)
	k := 0
	next := func() int {
		b := stream[k]
		k++
		return int(b)
	}

	// Draw three distinct wheels from the preset bank.
	avail := append([]string(nil), rotorPresetNames...)
	cfg := Config{Reflector: "B"}
	for len(cfg.Rotors) < MinRotors {
		i := next() % len(avail)
		cfg.Rotors = append(cfg.Rotors, RotorSpec{
			Name:     avail[i],
			Ring:     next() % AlphabetSize,
			Position: next() % AlphabetSize,
		})
		avail = append(avail[:i], avail[i+1:]...)
	}

	// Shuffle a copy of the alphabet and plug the first six pairs.
	letters := []byte(Alphabet)
	for i := len(letters) - 1; i > 0; i-- {
		j := next() % (i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
	for i := 0; i < 12; i += 2 {
		cfg.Plugboard = append(cfg.Plugboard, string(letters[i:i+2]))
	}
	return cfg
}
