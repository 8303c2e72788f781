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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a rotomat encrypted message.",
	Long:  `Decrypt a message encrypted by the rotomat rotor cipher machine, restoring the rotor positions recorded in the message header.`,
	Run: func(cmd *cobra.Command, args []string) {
		decrypt(args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}

func decrypt(args []string) {
	buildMachine(args)
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()
	var fal string
	var ofName string
	var posStr string
	var rdr io.Reader
	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(5)
	checkError(err)
	if string(b) == "-----" {
		usePem = true
		pRdr, blck := pem.FromPem(bRdr)
		var exists bool
		fal, exists = blck.Headers["ApiLevel"]
		if !exists {
			fal = "-1"
		}
		posStr = blck.Headers["Positions"]
		if len(outputFileName) == 0 {
			fName, ok := blck.Headers["FileName"]
			if ok {
				ofName = fName
			}
		}
		rdr = pRdr
	} else {
		line, err := bRdr.ReadString('\n')
		cobra.CheckErr(err)
		fields := strings.Split(strings.TrimSuffix(line, "\n"), "|")
		if len(fields) != 5 || fields[0] != "+ROTOMAT" {
			cobra.CheckErr("the input does not contain a rotomat message header")
		}
		fal = fields[1]
		ofName = fields[2]
		useASCII85 = fields[3] == "a"
		useBinary = fields[3] == "b"
		posStr = fields[4]
		if useASCII85 {
			rdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
		} else {
			rdr = bRdr
		}
	}
	fileApiLevel, _ := strconv.Atoi(fal)
	if fileApiLevel != rotomatApiLevel {
		fmt.Fprintf(os.Stderr, "Error: API Level mismatch. FileApiLevel: %d, RotomatApiLevel: %d\n", fileApiLevel, rotomatApiLevel)
		os.Exit(100)
	}
	if len(outputFileName) == 0 && len(ofName) > 0 {
		fout, err = os.Create(ofName)
		checkError(err)
	}
	// Re-arm the rotors to the positions the sender started from.
	positions, err := parsePositions(posStr)
	cobra.CheckErr(err)
	cobra.CheckErr(rotorMachine.SetPositions(positions))
	cipherText, err := io.ReadAll(rdr)
	cobra.CheckErr(err)
	plainText, err := rotorMachine.ProcessMessage(strings.TrimRight(string(cipherText), "\r\n"))
	cobra.CheckErr(err)
	fmt.Fprintln(fout, plainText)
}
