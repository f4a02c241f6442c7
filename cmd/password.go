package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/tkey/subkey"
)

// passwordCmd represents the password command
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Random passwords from an alphabet",
	Long: `Draw passwords from the subkey schedule, For example:
  tkey password --length=12 --count=3
  tkey password --alphabet=0123456789 --length=6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := masterKeyOptions(cmd)
		if err != nil {
			return err
		}
		p := subkey.New(opts...)

		out := cmd.OutOrStdout()
		alphabet := viper.GetString("password.alphabet")
		length := viper.GetInt("password.length")
		for i := 0; i < viper.GetInt("password.count"); i++ {
			pw, err := p.Password(alphabet, length)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, pw)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwordCmd)

	addMasterKeyFlags(passwordCmd)
	flags := passwordCmd.Flags()
	flags.String("alphabet", subkey.DefaultAlphabet, "characters to draw from")
	flags.IntP("length", "l", 8, "password length")
	flags.IntP("count", "n", 1, "number of passwords")
	viper.BindPFlag("password.alphabet", flags.Lookup("alphabet"))
	viper.BindPFlag("password.length", flags.Lookup("length"))
	viper.BindPFlag("password.count", flags.Lookup("count"))
}
