package adgen_test

import (
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSnippets(t *testing.T) {
	t.Parallel()

	t.Run("extracts groups in order", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("Header: Services\n- Repair\n- Install\nHeader: Areas\n- North\n- South")

		require.Len(t, groups, 2)
		assert.Equal(t, "Services", groups[0].Header)
		assert.Equal(t, []string{"Repair", "Install"}, groups[0].Values)
		assert.Equal(t, "Areas", groups[1].Header)
		assert.Equal(t, []string{"North", "South"}, groups[1].Values)
		assert.True(t, groups[0].Parsed())
		assert.Empty(t, groups[0].Raw)
	})

	t.Run("discards text before first header", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("Here are some snippets:\n- stray\nHeader: Types\n- A")

		require.Len(t, groups, 1)
		assert.Equal(t, "Types", groups[0].Header)
		assert.Equal(t, []string{"A"}, groups[0].Values)
	})

	t.Run("matches header label case-insensitively and trims colons", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("HEADER: Brands:\n- Acme\nheader:Models\n- X1")

		require.Len(t, groups, 2)
		assert.Equal(t, "Brands", groups[0].Header)
		assert.Equal(t, "Models", groups[1].Header)
	})

	t.Run("keeps header without values as raw content", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("Header: Services\nInsufficient detail in brief.\nHeader: Areas\n- North")

		require.Len(t, groups, 2)
		assert.False(t, groups[0].Parsed())
		assert.Equal(t, "Services", groups[0].Header)
		assert.Equal(t, "Services\nInsufficient detail in brief.", groups[0].Raw)
		assert.True(t, groups[1].Parsed())
	})

	t.Run("excludes values without dash bullet", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("Header: Services\n* Repair\n- Install")

		require.Len(t, groups, 1)
		assert.Equal(t, []string{"Install"}, groups[0].Values)
	})

	t.Run("returns empty slice without headers", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, adgen.ExtractSnippets(""))
		assert.Empty(t, adgen.ExtractSnippets("- Repair\n- Install"))
	})

	t.Run("does not split on words ending in header", func(t *testing.T) {
		t.Parallel()

		groups := adgen.ExtractSnippets("Header: Services\n- Subheader: kept\n- Repair")

		require.Len(t, groups, 1)
		assert.Equal(t, []string{"Subheader: kept", "Repair"}, groups[0].Values)
	})
}
