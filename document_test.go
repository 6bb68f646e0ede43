package adgen_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses ad copy and sitelinks in order", func(t *testing.T) {
		t.Parallel()

		raw := "AD COPY VARIATION 1 (Service Focus: Widgets):\nHeadlines:\n- Buy Widgets Now\nDescriptions:\n- Great widgets.\nSITELINKS:\n- Contact Us"

		doc := adgen.Parse(raw)

		require.Len(t, doc.Entries, 2)

		adCopy := doc.Entries[0]
		assert.Equal(t, adgen.EntryAdCopy, adCopy.Kind)
		assert.Equal(t, "AD COPY VARIATION 1 (Service Focus: Widgets)", adCopy.Title)
		require.NotNil(t, adCopy.AdCopy)
		assert.Equal(t, []string{"Buy Widgets Now"}, adCopy.AdCopy.Headlines)
		assert.Equal(t, []string{"Great widgets."}, adCopy.AdCopy.Descriptions)
		assert.False(t, adCopy.Empty)

		sitelinks := doc.Entries[1]
		assert.Equal(t, adgen.EntryText, sitelinks.Kind)
		assert.Equal(t, "SITELINKS", sitelinks.Title)
		assert.Equal(t, "- Contact Us", sitelinks.Text)
		assert.False(t, doc.Unstructured())
	})

	t.Run("dispatches every section kind", func(t *testing.T) {
		t.Parallel()

		doc := adgen.Parse(sampleResponse)

		kinds := make([]adgen.EntryKind, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			kinds = append(kinds, e.Kind)
		}
		assert.Equal(t, []adgen.EntryKind{
			adgen.EntryAdCopy,
			adgen.EntryAdCopy,
			adgen.EntryText,
			adgen.EntrySnippets,
			adgen.EntryText,
		}, kinds)

		snippets := doc.Find(adgen.EntrySnippets)
		require.Len(t, snippets, 1)
		require.Len(t, snippets[0].Snippets, 2)
		assert.Equal(t, "Services", snippets[0].Snippets[0].Header)

		callouts := doc.Entries[4]
		assert.Equal(t, "CALLOUTS", callouts.Title)
		assert.Equal(t, "- Free Shipping\n- 24/7 Support", callouts.Text)
	})

	t.Run("keeps intro out of entries", func(t *testing.T) {
		t.Parallel()

		doc := adgen.Parse(sampleResponse)

		assert.Equal(t, "Here are your Google Ads assets.", doc.Intro)
		for _, e := range doc.Entries {
			assert.NotEqual(t, adgen.TitleIntro, e.Title)
		}
	})

	t.Run("keeps distinct variations with the same focus", func(t *testing.T) {
		t.Parallel()

		raw := "AD COPY VARIATION 1 (General Focus):\nHeadlines:\n- A\nAD COPY VARIATION 1 (General Focus):\nHeadlines:\n- B"

		variations := adgen.Parse(raw).Variations()

		require.Len(t, variations, 2)
		assert.Equal(t, []string{"A"}, variations[0].Headlines)
		assert.Equal(t, []string{"B"}, variations[1].Headlines)
	})

	t.Run("flags empty sections and keeps their position", func(t *testing.T) {
		t.Parallel()

		raw := "AD COPY VARIATION 1:\nNo ads today.\nSTRUCTURED SNIPPETS:\n- stray\nCALLOUTS:\n"

		doc := adgen.Parse(raw)

		require.Len(t, doc.Entries, 3)
		for _, e := range doc.Entries {
			assert.True(t, e.Empty, "entry %q", e.Title)
		}
		assert.Equal(t, "AD COPY VARIATION 1", doc.Entries[0].Title)
		assert.Equal(t, "CALLOUTS", doc.Entries[2].Title)
	})

	t.Run("falls back to raw output without markers", func(t *testing.T) {
		t.Parallel()

		doc := adgen.Parse("  I could not generate ads for this site.  ")

		require.Len(t, doc.Entries, 1)
		assert.True(t, doc.Unstructured())
		assert.Equal(t, adgen.TitleRawOutput, doc.Entries[0].Title)
		assert.Equal(t, adgen.EntryText, doc.Entries[0].Kind)
		assert.Equal(t, "I could not generate ads for this site.", doc.Entries[0].Text)
	})

	t.Run("does not mutate input and is deterministic", func(t *testing.T) {
		t.Parallel()

		raw := sampleResponse

		first := adgen.Parse(raw)
		second := adgen.Parse(raw)

		assert.Equal(t, sampleResponse, raw)
		assert.Equal(t, first, second)
	})

	t.Run("encodes empty snippet list", func(t *testing.T) {
		t.Parallel()

		doc := adgen.Parse("STRUCTURED SNIPPETS:\nnothing usable")

		b, err := json.Marshal(doc)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"entries": [
				{"kind": "snippets", "title": "STRUCTURED SNIPPETS", "snippets": [], "empty": true}
			]
		}`, string(b))
	})

	t.Run("encodes as tagged JSON", func(t *testing.T) {
		t.Parallel()

		doc := adgen.Parse("AD COPY VARIATION 1:\nHeadlines:\n- A\nCALLOUTS:\n- B")

		b, err := json.Marshal(doc)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"entries": [
				{"kind": "ad_copy", "title": "AD COPY VARIATION 1", "adCopy": {"headlines": ["A"], "descriptions": []}, "empty": false},
				{"kind": "text", "title": "CALLOUTS", "text": "- B", "empty": false}
			]
		}`, string(b))
	})
}
