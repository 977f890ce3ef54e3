package main

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/haijima/allpairs/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_runStats(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	cmd, buf := newTestCmd()
	fs := newTestFs(t, map[string]string{"columns.yaml": threeBinaryColumns})
	v := newTestViper(map[string]any{"file": "columns.yaml"})

	err := runStats(cmd, v, fs)

	require.NoError(t, err)
	assertGolden(t, "stats", buf.String())
}

func Test_runStats_missingFile(t *testing.T) {
	cmd, _ := newTestCmd()
	v := newTestViper(map[string]any{"file": "missing.yaml"})

	err := runStats(cmd, v, newTestFs(t, nil))

	assert.ErrorContains(t, err, "read column file missing.yaml")
}

func Test_reduction(t *testing.T) {
	tests := []struct {
		name         string
		rows         int
		crossProduct int64
		want         string
	}{
		{"none", 0, 0, "-"},
		{"nothing saved", 6, 6, "0.0%"},
		{"three binary", 7, 8, "12.5%"},
		{"large", 9, 1000, "99.1%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reduction(tt.rows, big.NewInt(tt.crossProduct)))
		})
	}
}

func Test_runStats_emptyDomain(t *testing.T) {
	cmd, buf := newTestCmd()
	v := newTestViper(map[string]any{"column": []string{"a=x,y", "b="}})

	err := runStats(cmd, v, newTestFs(t, nil))

	assert.True(t, errors.Is(err, shuffle.ErrInvalidArgument))
	assert.Contains(t, errors.FlattenHints(err), `"b" (#1)`)
	assert.Empty(t, buf.String())
}
