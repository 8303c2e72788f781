/*
Copyright © 2026 The rotomat authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a message using the rotor machine",
	Long:  `Encrypt a message (uppercase letters and spaces) using the configured rotor cipher machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		useBinary = !(useASCII85 || usePem)
		encrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	encryptCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encryptCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encryptCmd.Flags().BoolVarP(&stripInput, "strip", "s", false, "drop characters the machine cannot encode instead of failing")
}

func encrypt(args []string) {
	buildMachine(args)
	// Continue from the rotor positions the last message left behind,
	// unless told to start fresh from the configured positions.
	if !resetState {
		sMap := readStateFile(make(map[string][]int))
		if positions, ok := sMap[rotorMachine.Fingerprint()]; ok {
			cobra.CheckErr(rotorMachine.SetPositions(positions))
		}
	}
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()
	raw, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	msg := normalizeMessage(string(raw))
	// The header must carry the positions the rotors start from, not
	// the ones they end on, so capture them before processing.
	startPositions := formatPositions(rotorMachine.Positions())
	cipherText, err := rotorMachine.ProcessMessage(msg)
	cobra.CheckErr(err)
	if usePem {
		var blck pem.Block
		blck.Headers = make(map[string]string)
		blck.Type = "ROTOMAT ENCRYPTED MESSAGE"
		blck.Headers["Positions"] = startPositions
		if len(inputFileName) > 0 && inputFileName != "-" {
			blck.Headers["FileName"] = inputFileName
		}
		blck.Headers["ApiLevel"] = strconv.Itoa(rotomatApiLevel)
		_, err = io.Copy(fout, pem.ToPem(strings.NewReader(cipherText), blck))
	} else {
		headerLine = fmt.Sprintf("+ROTOMAT|%d|", rotomatApiLevel)
		if len(inputFileName) > 0 && inputFileName != "-" {
			headerLine += inputFileName
		}
		if useASCII85 {
			headerLine += "|a"
		} else {
			headerLine += "|b"
		}
		headerLine += fmt.Sprintf("|%s\n", startPositions)
		fout.WriteString(headerLine)
		if useASCII85 {
			_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(strings.NewReader(cipherText))))
		} else {
			_, err = fmt.Fprintln(fout, cipherText)
		}
	}
	checkError(err)
	// Remember where the rotors stopped so the next message carries on.
	sMap := readStateFile(make(map[string][]int))
	sMap[rotorMachine.Fingerprint()] = rotorMachine.Positions()
	cobra.CheckErr(writeStateFile(sMap))
}

// normalizeMessage flattens line breaks and tabs to spaces and, when
// asked to, strips everything the machine cannot encode.  Case folding
// is left to the machine itself.
func normalizeMessage(text string) string {
	text = strings.TrimRight(text, "\r\n")
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
	if !stripInput {
		return text
	}
	text = strings.ToUpper(text)
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || (c >= 'A' && c <= 'Z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
