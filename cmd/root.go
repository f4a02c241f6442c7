package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tkey",
	Short: "Toy key and number generators.",
	Long: `Toy key and number generators. Not cryptographically secure.
Derive a DES-style subkey schedule or hash-mixed hex keys, For example:
  tkey key --seed=123456 --length=32
  tkey schedule --key=123456 --samples=5
  echo 123456 | tkey dice --stdin --rolls=600
  tkey password --length=12 --count=3`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tkey.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", flags.Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logrus.WithError(err).Warn("cannot locate home directory, skipping config file")
		} else {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".tkey")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("tkey")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
		logrus.WithError(err).Warn("cannot read config file")
	}
}

func initLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
