package main

import (
	"github.com/hapycolor/colorreducer/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type initOpts struct {
	out string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "writes a configuration file with the default settings",
		Long:  `writes the default settings to the given file, or to colorreducer/config.yaml in the user configuration directory. An existing file is left alone.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(initopts.out)
			if err != nil {
				return err
			}
			logrus.Infof("Wrote configuration to %s.", path)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "", "where to write the configuration, defaults to "+config.DefaultPath())
	return initCmd
}
