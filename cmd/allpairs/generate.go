package main

import (
	"github.com/haijima/allpairs/internal/io"
	"github.com/haijima/allpairs/shuffle/pairwise"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGenerateCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "generate"
	cmd.Aliases = []string{"gen", "rows"}
	cmd.Short = "Print rows covering every value pair"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGenerate(cmd, v, fs) }

	cmd.Flags().String("format", "table", "The output format {table|md|csv|tsv|html|simple}")
	cmd.Flags().Bool("no-header", false, "Hide header")
	cmd.Flags().Bool("no-rownum", false, "Hide row number")

	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	opt := io.PrintOption{
		Format:   v.GetString("format"),
		NoHeader: v.GetBool("no-header"),
		NoRowNum: v.GetBool("no-rownum"),
	}
	if err := io.ValidateFormat(opt.Format); err != nil {
		return err
	}

	cols, err := ColumnsFromViper(v, fs)
	if err != nil {
		return err
	}
	rows, err := pairwise.Apply(cols)
	if err != nil {
		return err
	}
	return io.PrintRows(cmd.OutOrStdout(), cols.Names(), rows, opt)
}
