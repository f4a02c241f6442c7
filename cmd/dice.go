package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/tkey"
	"github.com/tutils/tkey/counter/tally"
	"github.com/tutils/tkey/subkey"
	"golang.org/x/sync/errgroup"
)

// diceCmd represents the dice command
var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Roll a six-sided die and tally the faces",
	Long: `Roll a six-sided die from the subkey schedule, For example:
  tkey dice --key=123456 --rolls=600 --workers=4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := masterKeyOptions(cmd)
		if err != nil {
			return err
		}
		rolls := viper.GetInt("dice.rolls")
		workers := viper.GetInt("dice.workers")
		if rolls < 0 || workers < 1 {
			return fmt.Errorf("need rolls >= 0 and workers >= 1, got %d and %d", rolls, workers)
		}

		p := subkey.New(opts...)
		t, err := rollDice(p, rolls, workers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Master key: %d\n", p.MasterKey())
		for face, n := range t.Counts() {
			fmt.Fprintf(out, "%d: %d\n", face+1, n)
		}
		fmt.Fprintf(out, "Total: %d\n", t.Total())
		return nil
	},
}

// rollDice shares p between workers through one locked source, so each roll
// consumes exactly one subkey.
func rollDice(p *subkey.PRNG, rolls, workers int) (*tally.Tally, error) {
	t := tally.New(6)
	src := tkey.NewSyncSource(p)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		n := rolls / workers
		if w < rolls%workers {
			n++
		}
		g.Go(func() error {
			for i := 0; i < n; i++ {
				face, err := rollLocked(src)
				if err != nil {
					return err
				}
				if err := t.Add(face); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

func rollLocked(src *tkey.SyncSource) (face int, err error) {
	src.Do(func(s rand.Source64) {
		p, ok := s.(*subkey.PRNG)
		if !ok {
			err = fmt.Errorf("dice need a subkey source, got %T", s)
			return
		}
		face = p.RollDie()
	})
	return face, err
}

func init() {
	rootCmd.AddCommand(diceCmd)

	addMasterKeyFlags(diceCmd)
	flags := diceCmd.Flags()
	flags.Int("rolls", 60, "number of rolls")
	flags.Int("workers", 1, "goroutines sharing the generator")
	viper.BindPFlag("dice.rolls", flags.Lookup("rolls"))
	viper.BindPFlag("dice.workers", flags.Lookup("workers"))
}
