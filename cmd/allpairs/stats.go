package main

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/haijima/allpairs/data"
	"github.com/haijima/allpairs/shuffle/pairwise"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewStatsCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "stats"
	cmd.Aliases = []string{"stat", "summary"}
	cmd.Short = "Show how much the pairwise rows shrink the cross-product"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runStats(cmd, v, fs) }

	return cmd
}

func runStats(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	cols, err := ColumnsFromViper(v, fs)
	if err != nil {
		return err
	}
	tuples, err := pairwise.New[string]().Tuples(cols)
	if err != nil {
		return err
	}
	return printStats(cmd.OutOrStdout(), cols, pairwise.Cover(cols.Sizes(), tuples))
}

const tmplStats = `{{title "Summary"}}
  {{key "columns"}}       : {{.columns}}
  {{key "domain sizes"}}  : {{.sizes}}
  {{key "cross product"}} : {{.crossProduct}}
  {{key "needed pairs"}}  : {{.needed}}
  {{key "rows"}}          : {{.rows}}
  {{key "reduction"}}     : {{.reduction}}
  {{key "coverage"}}      : {{complete .report}}
  {{- range .pairs}}
    {{printf "%-20s" .name}}: {{.covered}}/{{.needed}}
  {{- end}}
`

func printStats(w io.Writer, cols data.Columns[string], r *pairwise.Report) error {
	cp := pairwise.CrossProductSize(r.Sizes)

	pairs := make([]map[string]any, 0, len(r.ColumnPairs))
	for _, p := range r.ColumnPairs {
		pairs = append(pairs, map[string]any{
			"name":    fmt.Sprintf("%s x %s", cols[p.Left].Name, cols[p.Right].Name),
			"covered": humanize.Comma(int64(p.Covered)),
			"needed":  humanize.Comma(int64(p.Needed)),
		})
	}

	values := make(map[string]any)
	values["columns"] = len(cols)
	values["sizes"] = r.Sizes
	values["crossProduct"] = humanize.BigComma(cp)
	values["needed"] = humanize.Comma(int64(r.Needed))
	values["rows"] = humanize.Comma(int64(r.Tuples))
	values["reduction"] = reduction(r.Tuples, cp)
	values["report"] = r
	values["pairs"] = pairs

	return templateRender(w, "stats", tmplStats, values)
}

// reduction is the share of the cross-product that the rows leave out.
func reduction(rows int, crossProduct *big.Int) string {
	if crossProduct.Sign() == 0 {
		return "-"
	}
	ratio := new(big.Float).Quo(new(big.Float).SetInt64(int64(rows)), new(big.Float).SetInt(crossProduct))
	f, _ := ratio.Float64()
	return fmt.Sprintf("%.1f%%", 100*(1-f))
}

var tmplFuncs = map[string]any{
	"title": color.CyanString,
	"key":   color.MagentaString,
	"complete": func(r *pairwise.Report) string {
		s := fmt.Sprintf("%s/%s", humanize.Comma(int64(r.Covered)), humanize.Comma(int64(r.Needed)))
		if r.Complete() {
			return color.GreenString("%s", s)
		}
		return color.RedString("%s", s)
	},
}

func templateRender(w io.Writer, name string, tmpl string, data map[string]any) error {
	t, err := template.New(name).Funcs(tmplFuncs).Parse(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
