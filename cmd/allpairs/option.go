package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/haijima/allpairs/data"
	"github.com/haijima/allpairs/internal/io"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetColumnOptionFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("file", "f", "", "The YAML or JSON `file` defining the columns")
	cmd.PersistentFlags().StringArrayP("column", "c", []string{}, "A column given as `name=v1,v2,...` (repeatable)")
	_ = cmd.MarkPersistentFlagFilename("file", "yaml", "yml", "json")
}

// ColumnsFromViper collects the columns from the column file, then the inline
// --column flags. When neither is given, the "columns" key of the config is used.
func ColumnsFromViper(v *viper.Viper, fs afero.Fs) (data.Columns[string], error) {
	file := v.GetString("file")
	inline := v.GetStringSlice("column")

	specs := make([]io.ColumnSpec, 0)
	if file != "" {
		cols, err := io.LoadColumns(fs, file)
		if err != nil {
			return nil, err
		}
		for _, c := range cols {
			specs = append(specs, io.ColumnSpec{Name: c.Name, Values: c.Values})
		}
	}
	for _, c := range inline {
		specs = append(specs, io.ParseColumnFlag(c, len(specs)))
	}
	if file == "" && len(inline) == 0 && v.IsSet("columns") {
		if err := v.UnmarshalKey("columns", &specs); err != nil {
			return nil, errors.Wrap(err, "read columns from config")
		}
	}

	if len(specs) == 0 {
		slog.Warn("no columns given")
	}
	return io.ToColumns(specs)
}
