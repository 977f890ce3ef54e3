package io

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/allpairs/data"
	"github.com/haijima/allpairs/shuffle"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ColumnSpec is one column as written in a column file or a config file.
type ColumnSpec struct {
	Name   string   `yaml:"name" mapstructure:"name"`
	Values []string `yaml:"values" mapstructure:"values"`
}

type ColumnFile struct {
	Columns []ColumnSpec `yaml:"columns"`
}

// LoadColumns reads a YAML (or JSON) column file.
func LoadColumns(fs afero.Fs, path string) (data.Columns[string], error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read column file %s", path)
	}

	var f ColumnFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrapf(err, "parse column file %s", path)
	}
	return ToColumns(f.Columns)
}

// ParseColumnFlag parses "name=v1,v2,v3". Without "=" the column is named col<pos+1>.
func ParseColumnFlag(s string, pos int) ColumnSpec {
	name, values, ok := strings.Cut(s, "=")
	if !ok {
		name, values = "", s
	}
	spec := ColumnSpec{Name: strings.TrimSpace(name), Values: []string{}}
	if values = strings.TrimSpace(values); values != "" {
		for _, v := range strings.Split(values, ",") {
			spec.Values = append(spec.Values, strings.TrimSpace(v))
		}
	}
	if spec.Name == "" {
		spec.Name = fmt.Sprintf("col%d", pos+1)
	}
	return spec
}

// ToColumns converts specs into columns, rejecting duplicate values within a column.
// Columns without values are kept; shuffles report them.
func ToColumns(specs []ColumnSpec) (data.Columns[string], error) {
	cols := make(data.Columns[string], 0, len(specs))
	for i, spec := range specs {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("col%d", i+1)
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, v := range spec.Values {
			if !seen.Add(v) {
				return nil, errors.Mark(errors.Newf("duplicate value %q in column %q", v, name), shuffle.ErrInvalidArgument)
			}
		}
		cols = append(cols, data.NewColumn(name, spec.Values...))
	}
	return cols, nil
}
