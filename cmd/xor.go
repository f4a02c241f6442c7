package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tutils/tkey/crypt"
	"github.com/tutils/tkey/crypt/xor"
)

// xorCmd represents the xor command
var xorCmd = &cobra.Command{
	Use:   "xor",
	Short: "XOR standard input with a keystream",
	Long: `XOR standard input with the subkey keystream and write the result to standard output.
Running it twice with the same key restores the input, For example:
  tkey xor --crypt-key=816559 < plain.txt > cipher.bin
  tkey xor --crypt-key=816559 < cipher.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var newer xor.RandomSourceNewer
		switch xorSource {
		case "subkey":
			newer = crypt.NewSubkeySource
		case "lcg":
			newer = crypt.NewLCGSource
		default:
			return fmt.Errorf("unknown keystream source %q", xorSource)
		}
		w := xor.NewCrypt(xorCryptSeed).NewEncoder(cmd.OutOrStdout(), xor.WithEncoderRandomSourceNewer(newer))
		_, err := io.Copy(w, cmd.InOrStdin())
		return err
	},
}

var (
	xorCryptSeed int64
	xorSource    string
)

const defaultXorCryptSeed = 98545715754651

func init() {
	rootCmd.AddCommand(xorCmd)

	flags := xorCmd.Flags()
	flags.Int64VarP(&xorCryptSeed, "crypt-key", "k", defaultXorCryptSeed, "crypt key")
	flags.StringVar(&xorSource, "source", "subkey", "keystream source (subkey, lcg)")
}
