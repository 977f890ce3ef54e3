package main

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-colorable"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Set by -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	v := viper.NewWithOptions(viper.WithLogger(slog.Default()))
	fs := afero.NewOsFs()
	v.SetFs(fs)
	rootCmd := NewRootCmd(v, fs)
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		if hint := errors.FlattenHints(err); hint != "" {
			slog.Error(err.Error(), "hint", hint)
		} else {
			slog.Error(err.Error())
		}
		os.Exit(1)
	}
}
