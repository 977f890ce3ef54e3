package main

import (
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/haijima/cobrax"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "allpairs"
	cmd.Short = "allpairs generates pairwise test data"
	cmd.Long = "allpairs combines column domains into rows that cover every value pair of every two columns."
	cmd.Version = cobrax.VersionFunc(version, commit, date)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cobrax.RootPersistentPreRunE(cmd, v, fs, args); err != nil {
			return err
		}
		// Colorization settings
		color.NoColor = color.NoColor || v.GetBool("no-color")
		// Set Logger
		l := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{Level: cobrax.VerbosityLevel(v), NoColor: color.NoColor, TimeFormat: time.Kitchen}))
		slog.SetDefault(l)
		cobrax.SetLogger(l)
		return nil
	}
	SetColumnOptionFlags(cmd)

	cmd.AddCommand(NewGenerateCmd(v, fs))
	cmd.AddCommand(NewStatsCmd(v, fs))
	cmd.AddCommand(NewGenConfCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
