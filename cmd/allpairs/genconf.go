package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGenConfCmd(_ *viper.Viper, _ afero.Fs) *cobra.Command {
	genConfCmd := cobrax.PrintConfigCmd("genconf")
	genConfCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		for _, name := range []string{"file", "column", "config", "no-color"} {
			if f := cmd.Flag(name); f != nil {
				f.Hidden = true
			}
		}
		cmd.Root().HelpFunc()(cmd, args)
	})
	return genConfCmd
}
