// Package main - rotomat encrypts/decrypts messages with a simulated
// electromechanical rotor cipher machine: a plugboard, a bank of
// stepping rotors, and a reflector, composed so that the same settings
// both encrypt and decrypt a message.
package main

import "github.com/rotomat/rotomat/cmd"

func main() {
	cmd.Execute()
}
