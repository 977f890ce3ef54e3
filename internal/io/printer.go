package io

import (
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/haijima/allpairs/data"
	"github.com/jedib0t/go-pretty/v6/table"
)

var Formats = []string{"table", "md", "csv", "tsv", "html", "simple"}

type PrintOption struct {
	Format   string
	NoHeader bool
	NoRowNum bool
}

func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

// PrintRows renders rows under the given column names.
func PrintRows(w io.Writer, names []string, rows data.Rows[string], opt PrintOption) error {
	if err := ValidateFormat(opt.Format); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	if !opt.NoHeader {
		header := make(table.Row, 0, len(names)+1)
		if !opt.NoRowNum {
			header = append(header, "#")
		}
		for _, n := range names {
			header = append(header, n)
		}
		t.AppendHeader(header)
	}
	for i, r := range rows {
		row := make(table.Row, 0, len(r)+1)
		if !opt.NoRowNum {
			row = append(row, i+1)
		}
		for _, v := range r {
			row = append(row, v)
		}
		t.AppendRow(row)
	}

	switch opt.Format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	}
	return nil
}
