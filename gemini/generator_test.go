package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	gen := gemini.NewGenerator(nil, "") // nil client ok for this test

	_, err := gen.Generate(context.Background(), "", adgen.GenerateOptions{})

	require.Error(t, err)
	assert.Equal(t, adgen.EINVALID, adgen.ErrorCode(err))
	assert.Contains(t, adgen.ErrorMessage(err), "prompt required")
}

func TestNewGenerator_DefaultsModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.NewGenerator(nil, "").Model())
	assert.Equal(t, "gemini-2.5-pro", gemini.NewGenerator(nil, "gemini-2.5-pro").Model())
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(adgen.GenerateOptions{})

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Google Ads copywriter")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(adgen.GenerateOptions{})

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
}

func TestBuildConfig_AttachesSearchToolOnlyWhenRequested(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gemini.BuildConfig(adgen.GenerateOptions{}).Tools)

	config := gemini.BuildConfig(adgen.GenerateOptions{Search: true})

	require.Len(t, config.Tools, 1)
	assert.NotNil(t, config.Tools[0].GoogleSearch)
}
