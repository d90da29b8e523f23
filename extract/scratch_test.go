package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiyo-matsu/camelot/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchDir_lifecycle(t *testing.T) {
	t.Parallel()

	scratch, err := extract.NewScratchDir(t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(scratch.Path())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Artifacts land inside the directory under the canonical page name.
	assert.Equal(t, filepath.Join(scratch.Path(), "page-3.pdf"), scratch.PagePath(3))

	require.NoError(t, scratch.Close())
	_, err = os.Stat(scratch.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestScratchDir_Close_is_idempotent(t *testing.T) {
	t.Parallel()

	scratch, err := extract.NewScratchDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, scratch.Close())
	require.NoError(t, scratch.Close())
}

func TestScratchDir_Close_removes_contents(t *testing.T) {
	t.Parallel()

	scratch, err := extract.NewScratchDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(scratch.PagePath(1), []byte("x"), 0644))
	require.NoError(t, scratch.Close())

	_, err = os.Stat(scratch.Path())
	assert.True(t, os.IsNotExist(err))
}
