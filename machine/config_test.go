package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuildFromPresets(t *testing.T) {
	assert := assert.New(t)
	m, err := Classic().Build()
	require.NoError(t, err)
	assert.Equal([]int{0, 0, 0}, m.Positions())
}

func TestConfigBuildFromExplicitWiring(t *testing.T) {
	assert := assert.New(t)
	cfg := Config{
		Rotors: []RotorSpec{
			{Wiring: RotorPresets["IV"].Wiring, Notch: 9, Position: 3},
			{Wiring: RotorPresets["V"].Wiring, Notch: 25},
			{Wiring: RotorPresets["I"].Wiring, Notch: 16, Ring: 11},
		},
		Reflector: ReflectorPresets["A"],
	}
	m, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal([]int{3, 0, 0}, m.Positions())
}

func TestConfigBuildRejectsBadInput(t *testing.T) {
	assert := assert.New(t)
	base := Classic()

	cfg := base
	cfg.Rotors = []RotorSpec{{Name: "VIII"}, {Name: "II"}, {Name: "I"}}
	_, err := cfg.Build()
	assert.ErrorIs(err, ErrInvalidConfiguration)

	cfg = base
	cfg.Reflector = "NOT A WIRING"
	_, err = cfg.Build()
	assert.ErrorIs(err, ErrInvalidConfiguration)

	cfg = base
	cfg.Plugboard = []string{"A"}
	_, err = cfg.Build()
	assert.ErrorIs(err, ErrInvalidConfiguration)

	cfg = base
	cfg.Rotors = cfg.Rotors[:2]
	_, err = cfg.Build()
	assert.ErrorIs(err, ErrInvalidConfiguration)

	cfg = base
	cfg.Rotors = []RotorSpec{{Name: "I", Position: 26}, {Name: "II"}, {Name: "III"}}
	_, err = cfg.Build()
	assert.ErrorIs(err, ErrInvalidConfiguration)
}

func TestConfigFromSecretIsDeterministic(t *testing.T) {
	assert := assert.New(t)
	a := ConfigFromSecret([]byte("the quick brown fox"))
	b := ConfigFromSecret([]byte("the quick brown fox"))
	assert.Equal(a, b)

	c := ConfigFromSecret([]byte("a different passphrase"))
	assert.NotEqual(a, c)
}

func TestConfigFromSecretBuildsAWorkingMachine(t *testing.T) {
	assert := assert.New(t)
	cfg := ConfigFromSecret([]byte("shared secret"))

	assert.Len(cfg.Rotors, MinRotors)
	names := make(map[string]bool)
	for _, spec := range cfg.Rotors {
		names[spec.Name] = true
	}
	assert.Len(names, MinRotors, "drawn wheels must be distinct")
	assert.Len(cfg.Plugboard, 6)

	sender, err := cfg.Build()
	require.NoError(t, err)
	receiver, err := cfg.Build()
	require.NoError(t, err)

	cipherText, err := sender.ProcessMessage("MEET ME AT THE USUAL PLACE")
	require.NoError(t, err)
	plainText, err := receiver.ProcessMessage(cipherText)
	require.NoError(t, err)
	assert.Equal("MEET ME AT THE USUAL PLACE", plainText)
}

func TestConfigFromSecretRoundTripsThroughFingerprint(t *testing.T) {
	assert := assert.New(t)
	cfg := ConfigFromSecret([]byte("shared secret"))
	m1, err := cfg.Build()
	require.NoError(t, err)
	m2, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(m1.Fingerprint(), m2.Fingerprint())
}
