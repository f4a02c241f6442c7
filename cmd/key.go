package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/tkey/keygen"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Hash-mixed hex keys",
	Long: `Generate uppercase hex keys from a seed, a call counter and the clock, For example:
  tkey key --seed=123456 --length=32 --count=2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []keygen.Option
		if cmd.Flags().Changed("seed") {
			opts = append(opts, keygen.WithSeed(keySeed))
		}
		g := keygen.New(opts...)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed: %d\n", g.Seed())
		length := viper.GetInt("key.length")
		for i := 0; i < viper.GetInt("key.count"); i++ {
			key, err := g.GenerateKey(length)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Key %d: %s\n", i+1, key)
		}
		logrus.WithField("calls", g.Calls()).Debug("keys generated")
		return nil
	},
}

var (
	keySeed int64
)

func init() {
	rootCmd.AddCommand(keyCmd)

	flags := keyCmd.Flags()
	flags.Int64VarP(&keySeed, "seed", "s", 0, "seed (default derived from clock in microseconds)")
	flags.IntP("length", "l", keygen.DefaultKeyLength, "key length in hex digits")
	flags.IntP("count", "n", 2, "number of keys")
	viper.BindPFlag("key.length", flags.Lookup("length"))
	viper.BindPFlag("key.count", flags.Lookup("count"))
}
