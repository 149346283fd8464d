package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "lotto",
	Short: "Kinetic Monte Carlo event selection",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(viper.GetString("log"))
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// LOTTO_-prefixed environment variables override unset flags, same
	// layering viper provides for the neofs gateway's settings().
	viper.SetEnvPrefix("LOTTO")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log")); err != nil {
		logrus.Fatalf("binding log flag: %v", err)
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
