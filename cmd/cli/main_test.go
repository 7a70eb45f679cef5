package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/jobseq/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Sequence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "pipeline.jobs")
	err := os.WriteFile(filePath, []byte("a =>\nb => c\nc => f\nd => a\ne => b\nf =>\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	runErr := run(strings.NewReader(""), out, errOut, []string{filePath})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Equal(t, "afcbde\n", out.String())
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	in := strings.NewReader("a =>\nb => c\nc =>\n")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(in, out, &bytes.Buffer{}, []string{"-separator", " ", "-"})

	// --- Assert ---
	require.NoError(t, runErr)
	require.Equal(t, "a c b\n", out.String())
}

func TestRun_SequencingErrorExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		jobs    string
		wantMsg string
	}{
		{name: "self dependency", jobs: `a => \nb => \nc => c`, wantMsg: "depend on themselves"},
		{name: "circular reference", jobs: `a => \nb => c\nc => f\nd => a\ne => \nf => b`, wantMsg: "circular dependencies"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			runErr := run(nil, out, &bytes.Buffer{}, []string{"-jobs", tc.jobs})

			// --- Assert ---
			require.Error(t, runErr)
			exitErr, ok := runErr.(*cli.ExitError)
			require.True(t, ok, "run() should return an ExitError")
			require.Equal(t, cli.ExitSequencing, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
			require.Empty(t, out.String(), "nothing should be written on failure")
		})
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	t.Parallel()

	runErr := run(nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"-jobs", "hello world"})

	require.Error(t, runErr)
	exitErr, ok := runErr.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, cli.ExitUsage, exitErr.Code)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(nil, out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(nil, out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
