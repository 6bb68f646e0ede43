package site_test

import (
	"testing"

	"github.com/fwojciec/adgen/site"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	t.Parallel()

	const start = "https://example.com/"

	t.Run("puts start URL first even without candidates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{start}, site.Rank(start, nil, nil, 5))
	})

	t.Run("prefers pages matching service keywords", func(t *testing.T) {
		t.Parallel()

		candidates := []string{
			"https://example.com/blog/2020/01/news",
			"https://example.com/contact",
			"https://example.com/hvac-repair",
			"https://example.com/services/smart-thermostats",
		}

		got := site.Rank(start, candidates, []string{"Smart Thermostats", "HVAC Repair"}, 5)

		assert.Equal(t, []string{
			start,
			"https://example.com/services/smart-thermostats",
			"https://example.com/hvac-repair",
			"https://example.com/contact",
			"https://example.com/blog/2020/01/news",
		}, got)
	})

	t.Run("prefers overview pages then shallow paths", func(t *testing.T) {
		t.Parallel()

		candidates := []string{
			"https://example.com/a/b/c",
			"https://example.com/team",
			"https://example.com/about",
			"https://example.com/x/y",
		}

		got := site.Rank(start, candidates, nil, 10)

		assert.Equal(t, []string{
			start,
			"https://example.com/about",
			"https://example.com/team",
			"https://example.com/x/y",
			"https://example.com/a/b/c",
		}, got)
	})

	t.Run("drops duplicates, other hosts, assets and account pages", func(t *testing.T) {
		t.Parallel()

		candidates := []string{
			"https://example.com",
			"https://www.example.com/pricing/",
			"https://example.com/pricing",
			"https://other.com/pricing",
			"https://example.com/brochure.pdf",
			"https://example.com/cart",
			"https://example.com/privacy-policy",
			"mailto:hi@example.com",
			"https://example.com/pricing#plans",
		}

		got := site.Rank(start, candidates, nil, 10)

		assert.Equal(t, []string{start, "https://www.example.com/pricing/"}, got)
	})

	t.Run("keeps at most limit URLs", func(t *testing.T) {
		t.Parallel()

		candidates := []string{
			"https://example.com/one",
			"https://example.com/two",
			"https://example.com/three",
		}

		got := site.Rank(start, candidates, nil, 2)

		assert.Equal(t, []string{start, "https://example.com/one"}, got)
	})
}
