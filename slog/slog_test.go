package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/mock"
	adgenslog "github.com/fwojciec/adgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLogger returns a logger that writes every level to buf.
func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetch at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		html, err := adgenslog.NewLoggingFetcher(inner, newLogger(&buf)).Fetch(context.Background(), "https://acme.com/pricing")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://acme.com/pricing")
		assert.Contains(t, out, "bytes=20")
		assert.Contains(t, out, "duration=")
		assert.NotContains(t, out, "err=")
	})

	t.Run("logs failed fetch at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		_, err := adgenslog.NewLoggingFetcher(inner, newLogger(&buf)).Fetch(context.Background(), "https://acme.com/pricing")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `err="connection refused"`)
	})

	t.Run("successful fetch is hidden at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return "<html></html>", nil },
		}

		_, err := adgenslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://acme.com/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		require.NoError(t, adgenslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close())
		assert.True(t, closed)
	})
}

func TestLoggingSitemapService(t *testing.T) {
	t.Parallel()

	t.Run("logs URL count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(context.Context, string) ([]string, error) {
				return []string{"https://acme.com/a", "https://acme.com/b"}, nil
			},
		}

		urls, err := adgenslog.NewLoggingSitemapService(inner, newLogger(&buf)).DiscoverURLs(context.Background(), "https://acme.com")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, buf.String(), `msg="sitemap discovery"`)
		assert.Contains(t, buf.String(), "url=https://acme.com")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DiscoverURLsFn: func(context.Context, string) ([]string, error) {
				return nil, errors.New("parsing sitemap: EOF")
			},
		}

		_, err := adgenslog.NewLoggingSitemapService(inner, newLogger(&buf)).DiscoverURLs(context.Background(), "https://acme.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "count=0")
	})
}

func TestLoggingGenerator(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and search flag without prompt text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Generator{
			GenerateFn: func(context.Context, string, adgen.GenerateOptions) (string, error) {
				return "CALLOUTS:\n- Free Quotes", nil
			},
		}

		text, err := adgenslog.NewLoggingGenerator(inner, newLogger(&buf)).Generate(context.Background(), "write ads", adgen.GenerateOptions{Search: true})

		require.NoError(t, err)
		assert.Equal(t, "CALLOUTS:\n- Free Quotes", text)
		out := buf.String()
		assert.Contains(t, out, "msg=generate")
		assert.Contains(t, out, "prompt_chars=9")
		assert.Contains(t, out, "response_chars=23")
		assert.Contains(t, out, "search=true")
		assert.NotContains(t, out, "write ads")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Generator{
			GenerateFn: func(context.Context, string, adgen.GenerateOptions) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		_, err := adgenslog.NewLoggingGenerator(inner, newLogger(&buf)).Generate(context.Background(), "write ads", adgen.GenerateOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), `err="quota exceeded"`)
	})
}

func TestLoggingPageReader(t *testing.T) {
	t.Parallel()

	t.Run("logs page count and content size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageReader{
			ReadSiteFn: func(_ context.Context, siteURL string, _ []string) ([]*adgen.Page, error) {
				return []*adgen.Page{
					{URL: siteURL, Content: "12345"},
					{URL: siteURL + "about", Content: "678"},
				}, nil
			},
		}

		pages, err := adgenslog.NewLoggingPageReader(inner, newLogger(&buf)).ReadSite(context.Background(), "https://acme.com/", []string{"Repairs"})

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		out := buf.String()
		assert.Contains(t, out, `msg="read site"`)
		assert.Contains(t, out, "url=https://acme.com/")
		assert.Contains(t, out, "services=1")
		assert.Contains(t, out, "pages=2")
		assert.Contains(t, out, "chars=8")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageReader{
			ReadSiteFn: func(context.Context, string, []string) ([]*adgen.Page, error) {
				return nil, errors.New("start page unreachable")
			},
		}

		_, err := adgenslog.NewLoggingPageReader(inner, newLogger(&buf)).ReadSite(context.Background(), "https://acme.com/", nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "pages=0")
		assert.Contains(t, buf.String(), `err="start page unreachable"`)
	})
}
