package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/webasset/internal/app"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	root := t.TempDir()
	require.NoError(t, os.CopyFS(root, os.DirFS("commands/testdata/site")))
	settings := filepath.Join(t.TempDir(), "webasset.yaml")

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		expectedOut  string
	}{
		{
			name:         "ids",
			args:         []string{"webasset", "ids", "--root", root, "--settings", settings},
			expectedExit: 0,
			expectedOut:  "index\n",
		},
		{
			name:         "missing config dir",
			args:         []string{"webasset", "ids", "--root", root, "--settings", settings, "--config-dir", "/nope"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			out := new(bytes.Buffer)

			exitCode := run(func(a *app.App) {
				a.WithOutput(out)
			})

			assert.Equal(t, tt.expectedExit, exitCode)
			assert.Equal(t, tt.expectedOut, out.String())
		})
	}
}
