package adgen_test

import (
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAdCopy(t *testing.T) {
	t.Parallel()

	t.Run("extracts headlines and descriptions", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("Headlines:\n- A\n- B\nDescriptions:\n- C")

		assert.Equal(t, []string{"A", "B"}, v.Headlines)
		assert.Equal(t, []string{"C"}, v.Descriptions)
	})

	t.Run("missing headlines label yields empty headlines", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("- Orphan line\nDescriptions:\n- C\n- D")

		assert.NotNil(t, v.Headlines)
		assert.Empty(t, v.Headlines)
		assert.Equal(t, []string{"C", "D"}, v.Descriptions)
	})

	t.Run("missing descriptions label yields empty descriptions", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("Headlines:\n- A")

		assert.Equal(t, []string{"A"}, v.Headlines)
		assert.NotNil(t, v.Descriptions)
		assert.Empty(t, v.Descriptions)
	})

	t.Run("matches labels case-insensitively", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("HEADLINES:\n- A\ndescriptions:\n- B")

		assert.Equal(t, []string{"A"}, v.Headlines)
		assert.Equal(t, []string{"B"}, v.Descriptions)
	})

	t.Run("excludes lines without dash bullet", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("Headlines:\n* Buy Now\n1. Call Today\n-NoSpace\n- Kept\nDescriptions:\n• Bullet\n- Also Kept")

		assert.Equal(t, []string{"Kept"}, v.Headlines)
		assert.Equal(t, []string{"Also Kept"}, v.Descriptions)
	})

	t.Run("trims indentation and carriage returns", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("Headlines:\r\n   -  Padded Headline  \r\nDescriptions:\r\n\t- Tabbed\r\n")

		assert.Equal(t, []string{"Padded Headline"}, v.Headlines)
		assert.Equal(t, []string{"Tabbed"}, v.Descriptions)
	})

	t.Run("does not enforce length or count", func(t *testing.T) {
		t.Parallel()

		long := "This headline is far longer than thirty characters allowed"

		v := adgen.ExtractAdCopy("Headlines:\n- " + long)

		assert.Equal(t, []string{long}, v.Headlines)
	})

	t.Run("returns empty lists for unstructured body", func(t *testing.T) {
		t.Parallel()

		v := adgen.ExtractAdCopy("Nothing useful here.")

		assert.True(t, v.IsEmpty())
	})
}

func TestAdCopyVariation_Rows(t *testing.T) {
	t.Parallel()

	t.Run("pads shorter list with placeholder", func(t *testing.T) {
		t.Parallel()

		v := adgen.AdCopyVariation{
			Headlines:    []string{"H1", "H2", "H3"},
			Descriptions: []string{"D1"},
		}

		rows := v.Rows()

		require.Len(t, rows, 3)
		assert.Equal(t, adgen.AdCopyRow{Headline: "H1", Description: "D1"}, rows[0])
		assert.Equal(t, adgen.AdCopyRow{Headline: "H2", Description: adgen.Placeholder}, rows[1])
		assert.Equal(t, adgen.AdCopyRow{Headline: "H3", Description: adgen.Placeholder}, rows[2])
	})

	t.Run("pads headlines when descriptions are longer", func(t *testing.T) {
		t.Parallel()

		v := adgen.AdCopyVariation{Descriptions: []string{"D1", "D2"}}

		rows := v.Rows()

		require.Len(t, rows, 2)
		assert.Equal(t, adgen.Placeholder, rows[1].Headline)
		assert.Equal(t, "D2", rows[1].Description)
	})

	t.Run("returns no rows for empty variation", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, adgen.AdCopyVariation{}.Rows())
	})
}
