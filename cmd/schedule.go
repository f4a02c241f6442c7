package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/tkey/subkey"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Subkey schedule and sampled numbers",
	Long: `Print the 16 subkeys derived from a master key, then raw and ranged samples, For example:
  tkey schedule --key=123456 --samples=5 --min=1 --max=100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := masterKeyOptions(cmd)
		if err != nil {
			return err
		}
		p := subkey.New(opts...)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Master key: %d\n", p.MasterKey())
		for i, k := range p.Subkeys() {
			fmt.Fprintf(out, "Subkey %2d: %016X\n", i, k)
		}

		samples := viper.GetInt("schedule.samples")
		for i := 0; i < samples; i++ {
			fmt.Fprintf(out, "Raw %d: %d\n", i+1, p.NextRaw())
		}
		min, max := viper.GetInt64("schedule.min"), viper.GetInt64("schedule.max")
		for i := 0; i < samples; i++ {
			n, err := p.NextInRange(min, max)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Range [%d, %d] %d: %d\n", min, max, i+1, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	addMasterKeyFlags(scheduleCmd)
	flags := scheduleCmd.Flags()
	flags.Int("samples", 5, "number of raw and ranged samples")
	flags.Int64("min", 1, "lower bound of ranged samples")
	flags.Int64("max", 100, "upper bound of ranged samples")
	viper.BindPFlag("schedule.samples", flags.Lookup("samples"))
	viper.BindPFlag("schedule.min", flags.Lookup("min"))
	viper.BindPFlag("schedule.max", flags.Lookup("max"))
}
