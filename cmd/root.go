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
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rotomat/rotomat/machine"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	useClassic     bool
	resetState     bool
	stripInput     bool
	useASCII85     bool
	usePem         bool
	useBinary      bool
	headerLine     string
	stateFileName  string
	rotorMachine   *machine.Machine
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	rotomatStateFile = ".rotomat"
	rotomatApiLevel  = 1
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "rotomat",
	Short:   "A rotor cipher machine",
	Long:    `rotomat is a program that encrypts/decrypts messages using a simulated rotor cipher machine: a plugboard, a bank of stepping rotors, and a reflector.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rotomat.yaml)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the message file to encrypt/decrypt.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted message.")
	rootCmd.PersistentFlags().BoolVar(&useClassic, "classic", false, "use the classic three-wheel machine instead of a passphrase-derived one.")
	rootCmd.PersistentFlags().BoolVar(&resetState, "reset", false, "ignore saved rotor positions and start from the configured ones.")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rotomat" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rotomat")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Get the rotor state file name based on the current user.
	u, err := user.Current()
	cobra.CheckErr(err)
	stateFileName = fmt.Sprintf("%s%c%s", u.HomeDir, os.PathSeparator, rotomatStateFile)
}

// buildMachine constructs the cipher machine from, in order of
// preference: the rotor settings in the config file, the classic
// preset, or a machine derived from a shared passphrase.
func buildMachine(args []string) {
	var cfg machine.Config
	switch {
	case viper.IsSet("rotors"):
		cobra.CheckErr(viper.Unmarshal(&cfg))
	case useClassic:
		cfg = machine.Classic()
	default:
		cfg = machine.ConfigFromSecret([]byte(getSecret(args)))
	}
	m, err := cfg.Build()
	cobra.CheckErr(err)
	rotorMachine = m
}

// getSecret obtains the passphrase used to derive the machine from either:
// 1. User input from the terminal (most secure)
// 2. The 'ROTOMAT_SECRET' environment variable (less secure)
// 3. Arguments from the entered command line (least secure - not recommended)
func getSecret(args []string) string {
	var secret string
	if len(args) == 0 {
		if viper.IsSet("ROTOMAT_SECRET") {
			secret = viper.GetString("ROTOMAT_SECRET")
		} else {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintf(os.Stderr, "Enter the passphrase: ")
				byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
				cobra.CheckErr(err)
				fmt.Fprintln(os.Stderr, "")
				secret = string(byteSecret)
			}
		}
	} else {
		secret = strings.Join(args, " ")
	}

	if len(secret) == 0 {
		cobra.CheckErr("You must supply a passphrase.")
	}
	return secret
}

/*
	getInputAndOutputFiles will return the input and output files to use while
	encrypting/decrypting a message.  If input and/or output files names were
	given, then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(encode bool) (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 {
		if inputFileName == "-" {
			fin = os.Stdin
		} else {
			fin, err = os.Open(inputFileName)
			cobra.CheckErr(err)
		}
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" {
		fout = os.Stdout
	} else if encode {
		outputFileName = inputFileName + ".rmt"
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, ".rmt") {
			outputFileName = inputFileName[:len(inputFileName)-4]
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	return fin, fout
}

// checkError checks for errors that are not io.EOF and io.ErrUnexpectedEOF and logs them.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}

// formatPositions renders rotor positions as a space-separated list,
// fast rotor first, for message headers.
func formatPositions(positions []int) string {
	flds := make([]string, len(positions))
	for i, p := range positions {
		flds[i] = strconv.Itoa(p)
	}
	return strings.Join(flds, " ")
}

// parsePositions is the inverse of formatPositions.
func parsePositions(s string) ([]int, error) {
	flds := strings.Fields(s)
	positions := make([]int, len(flds))
	for i, fld := range flds {
		p, err := strconv.Atoi(fld)
		if err != nil {
			return nil, fmt.Errorf("bad rotor position [%s]: %v", fld, err)
		}
		positions[i] = p
	}
	return positions, nil
}

// readStateFile loads the saved rotor positions, keyed by machine
// fingerprint, so consecutive messages continue where the last one
// left the rotors.
func readStateFile(defaultMap map[string][]int) map[string][]int {
	f, err := os.OpenFile(stateFileName, os.O_RDONLY, 0600)
	if err != nil {
		return defaultMap
	}

	defer f.Close()
	smap := make(map[string][]int)
	dec := gob.NewDecoder(f)
	checkError(dec.Decode(&smap))
	return smap
}

func writeStateFile(wMap map[string][]int) error {
	f, err := os.OpenFile(stateFileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()
	enc := gob.NewEncoder(f)
	return enc.Encode(wMap)
}
