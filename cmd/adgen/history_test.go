package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/adgen"
	main "github.com/fwojciec/adgen/cmd/adgen"
	"github.com/fwojciec/adgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists runs", func(t *testing.T) {
		t.Parallel()

		var gotFilter adgen.RunFilter
		deps, stdout, _ := newDeps()
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, filter adgen.RunFilter) ([]*adgen.Run, error) {
				gotFilter = filter
				return []*adgen.Run{
					{ID: "run-2", URL: "https://acme.com", CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)},
					{ID: "run-1", URL: "https://example.com", CreatedAt: time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		err := (&main.HistoryCmd{Limit: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotFilter.Limit)
		assert.Nil(t, gotFilter.URL)
		assert.Equal(t, "run-2  2026-03-14 09:30  https://acme.com\nrun-1  2026-03-13 08:00  https://example.com\n", stdout.String())
	})

	t.Run("filters by normalized URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter adgen.RunFilter
		deps, _, _ := newDeps()
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, filter adgen.RunFilter) ([]*adgen.Run, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		err := (&main.HistoryCmd{URL: "acme.com"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://acme.com", *gotFilter.URL)
	})

	t.Run("shows hint when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, _ adgen.RunFilter) ([]*adgen.Run, error) {
				return nil, nil
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "adgen generate")
	})

	t.Run("reports store failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Runs = &mock.RunService{
			FindRunsFn: func(_ context.Context, _ adgen.RunFilter) ([]*adgen.Run, error) {
				return nil, errors.New("disk I/O error")
			},
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: disk I/O error")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	storedRun := func() *adgen.Run {
		return &adgen.Run{ID: "run-1", URL: "https://acme.com", Brief: "Business Name: Acme", Response: assetResponse}
	}
	runs := &mock.RunService{
		FindRunByIDFn: func(_ context.Context, id string) (*adgen.Run, error) {
			if id == "run-1" {
				return storedRun(), nil
			}
			return nil, adgen.Errorf(adgen.ENOTFOUND, "run not found")
		},
	}

	t.Run("renders stored response", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Runs = runs

		err := (&main.ShowCmd{ID: "run-1"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## STRUCTURED SNIPPETS")
		assert.Contains(t, stdout.String(), "* Repair")
	})

	t.Run("prints raw response", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Runs = runs

		err := (&main.ShowCmd{ID: "run-1", Raw: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, assetResponse+"\n", stdout.String())
	})

	t.Run("prints brief when requested", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Runs = runs

		err := (&main.ShowCmd{ID: "run-1", ShowBrief: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Business Name: Acme")
	})

	t.Run("reports missing run", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Runs = runs

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, adgen.ENOTFOUND, adgen.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: run not found")
	})
}
