package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const threeBinaryColumns = `columns:
  - name: browser
    values: [chrome, firefox]
  - name: os
    values: [linux, macos]
  - name: locale
    values: [en, ja]
`

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	return cmd, buf
}

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func newTestViper(settings map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range settings {
		v.Set(k, val)
	}
	return v
}

func assertGolden(t *testing.T, name string, out string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(strings.TrimRight(out, "\n")+"\n"))
}
