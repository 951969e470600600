package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	logLevel string
	config   string
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "colorreducer",
	Short: "colorreducer removes the fewest colours needed to make a palette clash free",
	Long:  `The tool builds a conflict graph over a palette, connecting every two colours closer than a threshold, and removes a minimum set of colours so that no conflict remains`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(rootopts.logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&rootopts.config, "config", "c", "", "configuration file, defaults to the user configuration directory")
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewGraphCmd())
	rootCmd.AddCommand(NewEncodeCmd())
	rootCmd.AddCommand(NewDecodeCmd())
	rootCmd.AddCommand(NewInitCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
