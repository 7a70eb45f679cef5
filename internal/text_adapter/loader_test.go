package text_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.jobs")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("a =>\nb => c\n"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("c =>\n"), 0600))

	model, err := NewLoader().Load(context.Background(), first, second)
	require.NoError(t, err)

	require.Len(t, model.Jobs, 3)
	assert.Equal(t, first, model.Jobs[1].Source)
	assert.Equal(t, "c", model.Jobs[1].DependsOn)
	assert.Equal(t, second, model.Jobs[2].Source)
}

func TestLoader_LoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.jobs"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.jobs")
		require.NoError(t, os.WriteFile(path, []byte("hello world"), 0600))

		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.ErrorContains(t, err, path)
	})
}

func TestLoader_Extensions(t *testing.T) {
	assert.Equal(t, []string{".jobs", ".txt"}, NewLoader().Extensions())
}
