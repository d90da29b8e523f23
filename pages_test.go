package camelot_test

import (
	"errors"
	"testing"

	"github.com/kiyo-matsu/camelot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageCountOf(n int) func() (int, error) {
	return func() (int, error) { return n, nil }
}

func TestResolvePages_default_never_consults_page_count(t *testing.T) {
	t.Parallel()

	// A provider that fails proves "1" resolves without opening the document.
	failing := func() (int, error) {
		return 0, errors.New("document should not be opened")
	}

	pages, err := camelot.ResolvePages("1", failing)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pages)

	// Empty spec falls back to the default and keeps the same guarantee.
	pages, err = camelot.ResolvePages("", failing)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pages)
}

func TestResolvePages_all_selects_every_page(t *testing.T) {
	t.Parallel()

	pages, err := camelot.ResolvePages("all", pageCountOf(4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, pages)
}

func TestResolvePages_mixed_tokens(t *testing.T) {
	t.Parallel()

	pages, err := camelot.ResolvePages("2,4-6,9-end", pageCountOf(10))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 6, 9, 10}, pages)
}

func TestResolvePages_deduplicates_and_sorts(t *testing.T) {
	t.Parallel()

	pages, err := camelot.ResolvePages("5,1-3,2,3-5", pageCountOf(10))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pages)
}

func TestResolvePages_rejects_malformed_specs(t *testing.T) {
	t.Parallel()

	specs := []string{"abc", "1-x", "x-3", "1,,3", "0", "-2", "1-"}
	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			t.Parallel()

			_, err := camelot.ResolvePages(spec, pageCountOf(10))
			require.Error(t, err)
			assert.Equal(t, camelot.EINVALID, camelot.ErrorCode(err))
		})
	}
}

func TestResolvePages_rejects_inverted_range(t *testing.T) {
	t.Parallel()

	_, err := camelot.ResolvePages("5-3", pageCountOf(10))
	require.Error(t, err)
	assert.Equal(t, camelot.EINVALID, camelot.ErrorCode(err))
}

func TestResolvePages_propagates_page_count_error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	_, err := camelot.ResolvePages("all", func() (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)

	_, err = camelot.ResolvePages("2-end", func() (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)
}
