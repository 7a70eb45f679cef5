package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content inside dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "jobs.hcl", `
		job "a" {}

		job "b" {
			description = "depends on c by reference"
			depends_on  = job.c
		}

		job "c" {
			depends_on = "f"
		}

		job "d" {
			depends_on = null
		}

		job "f" {}
	`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	want := []*config.Job{
		{Name: "a", Source: path},
		{Name: "b", DependsOn: "c", Description: "depends on c by reference", Source: path},
		{Name: "c", DependsOn: "f", Source: path},
		{Name: "d", Source: path},
		{Name: "f", Source: path},
	}
	if diff := cmp.Diff(want, model.Jobs); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadNullDependency(t *testing.T) {
	path := writeFile(t, t.TempDir(), "jobs.hcl", `
		job "a" {
			depends_on = null
		}
		job "b" {}
	`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Jobs, 2)
	require.Empty(t, model.Jobs[0].DependsOn)
	require.Empty(t, model.Jobs[1].DependsOn)
}

func TestLoader_LoadKeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "b.hcl", `job "x" {}`)
	second := writeFile(t, dir, "a.hcl", `job "y" { depends_on = job.x }`)

	model, err := NewLoader().Load(context.Background(), first, second)
	require.NoError(t, err)
	require.Len(t, model.Jobs, 2)
	require.Equal(t, "x", model.Jobs[0].Name)
	require.Equal(t, "y", model.Jobs[1].Name)
	require.Equal(t, "x", model.Jobs[1].DependsOn)
}

func TestLoader_LoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `job "a" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing label",
			content: `job {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "reference outside the job namespace",
			content: `job "a" { depends_on = task.b }`,
			wantErr: "must reference a job",
		},
		{
			name:    "bare variable",
			content: `job "a" { depends_on = b }`,
			wantErr: "invalid depends_on",
		},
		{
			name:    "bool value",
			content: `job "a" { depends_on = true }`,
			wantErr: "depends_on must be a string",
		},
		{
			name:    "non-string value",
			content: `job "a" { depends_on = ["b"] }`,
			wantErr: "depends_on must be a string",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "jobs.hcl", tc.content)

			model, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			require.Nil(t, model)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoader_Extensions(t *testing.T) {
	require.Equal(t, []string{".hcl"}, NewLoader().Extensions())
}
