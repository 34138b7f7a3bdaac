package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/vpy/internal/app"
	"github.com/vk/vpy/internal/cli"
)

func TestRun_LoadsDefinition(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "main.ui")
	src := "[Widget1]\nclass: Button\ngrid_row: 1\nstick_north: Yes\ntext: Big, red button!\n"
	require.NoError(t, os.WriteFile(filePath, []byte(src), 0600))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, errOut, []string{filePath})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Widget1 (Button) ")
	assert.Contains(t, out.String(), " stick_north=true ")
	assert.Contains(t, out.String(), `text="Big, red button!"`)
}

func TestRun_LoadFailure(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "main.ui")
	require.NoError(t, os.WriteFile(filePath, []byte("[Widget1]\ntext: no class\n"), 0600))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, errOut, []string{filePath})

	require.ErrorIs(t, err, app.ErrLoadFailed)
	assert.Contains(t, errOut.String(), "Error: Widget class not specified for 'Widget1'")
	assert.Empty(t, out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_UnknownKit(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-kit", "gtk", "main.ui"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "unknown ui kit: 'gtk'")
}
