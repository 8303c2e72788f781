package machine

// RotorPreset is a named historical wheel: its wiring and the index of
// its turnover notch.
type RotorPreset struct {
	Wiring string
	Notch  int
}

// RotorPresets holds the wheel wirings of the Enigma I family.  The
// notch index is the turnover letter of each wheel.
var RotorPresets = map[string]RotorPreset{
	"I":   {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", 16}, // turnover Q
	"II":  {"AJDKSIRUXBLHWTMCQGZNPYFVOE", 4},  // turnover E
	"III": {"BDFHJLCPRTXVZNYEIWGAKMUSQO", 21}, // turnover V
	"IV":  {"ESOVPZJAYQUIRHXLNFTGKDCMWB", 9},  // turnover J
	"V":   {"VZBRGITYUPSDNHLXAWMJQOFECK", 25}, // turnover Z
}

// ReflectorPresets holds the standard reflector wirings.  All three
// are involutions.
var ReflectorPresets = map[string]string{
	"A": "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C": "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// rotorPresetNames fixes the draw order for secret-derived configs.
var rotorPresetNames = []string{"I", "II", "III", "IV", "V"}

// Classic returns the standard three-wheel setup: wheels III, II, I
// with III in the fast slot, reflector B, rings and positions zeroed,
// no plug cables.
func Classic() Config {
	return Config{
		Rotors:    []RotorSpec{{Name: "III"}, {Name: "II"}, {Name: "I"}},
		Reflector: "B",
	}
}
