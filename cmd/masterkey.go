package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tutils/tkey"
	"github.com/tutils/tkey/subkey"
	"golang.org/x/term"
)

// Shared by the commands that build a subkey schedule
var (
	masterKeyText  string
	masterKeyStdin bool
)

func addMasterKeyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&masterKeyText, "key", "k", "", "64-bit master key (empty = derive from clock)")
	flags.BoolVar(&masterKeyStdin, "stdin", false, "read the master key from one line of standard input")
	cmd.MarkFlagsMutuallyExclusive("key", "stdin")
}

// parseMasterKey accepts plain decimal digits only; leading zeros are not
// octal and 0x/0b/0o prefixes are rejected. ok is false for blank input.
func parseMasterKey(text string) (key uint64, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false, nil
	}
	key, err = strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("master key %q: %w", text, tkey.ErrParseFailure)
	}
	return key, true, nil
}

// readMasterKey reads a single line. Read errors other than EOF are returned;
// unparsable text is not an error, it falls back to a clock-derived key.
func readMasterKey(r io.Reader, prompt io.Writer) (string, error) {
	if prompt != nil {
		fmt.Fprint(prompt, "Master key (empty = auto): ")
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}

// masterKeyOptions resolves the --key/--stdin flags into PRNG options.
func masterKeyOptions(cmd *cobra.Command) ([]subkey.Option, error) {
	text := masterKeyText
	if masterKeyStdin {
		var prompt io.Writer
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			prompt = cmd.ErrOrStderr()
		}
		line, err := readMasterKey(cmd.InOrStdin(), prompt)
		if err != nil {
			return nil, err
		}
		text = line
	}

	key, ok, err := parseMasterKey(text)
	if err != nil {
		logrus.WithError(err).Warn("invalid master key, using a clock-derived key")
	}
	if !ok {
		return nil, nil
	}
	return []subkey.Option{subkey.WithMasterKey(key)}, nil
}
