package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOutputTruncatesPreservingOrder(t *testing.T) {
	output := map[string]any{
		"hooks": []any{"one", "two", "three", "four", "five"},
	}

	for topK := 1; topK <= 5; topK++ {
		buckets := NormalizeOutput(output, topK)
		assert.Len(t, buckets.Hooks, topK)
		assert.Equal(t, "one", buckets.Hooks[0])
		if topK >= 2 {
			assert.Equal(t, "two", buckets.Hooks[1])
		}
	}
}

func TestNormalizeOutputCoercesScalars(t *testing.T) {
	output := map[string]any{
		"captions": []any{float64(42), true, "text", nil},
	}

	buckets := NormalizeOutput(output, 5)
	assert.Equal(t, []string{"42", "true", "text"}, buckets.Captions)
}

func TestNormalizeOutputDropsCompositesAndEmpties(t *testing.T) {
	output := map[string]any{
		"hashtags": []any{" #go ", "", "   ", map[string]any{"tag": "#x"}, []any{"#y"}, "#real"},
	}

	buckets := NormalizeOutput(output, 5)
	assert.Equal(t, []string{"#go", "#real"}, buckets.Hashtags)
}

func TestNormalizeOutputNonSequenceBecomesEmpty(t *testing.T) {
	output := map[string]any{
		"hooks":              "not a list",
		"on_screen_overlays": map[string]any{"a": 1},
		"captions":           float64(7),
	}

	buckets := NormalizeOutput(output, 3)
	assert.Empty(t, buckets.Hooks)
	assert.Empty(t, buckets.OnScreenOverlays)
	assert.Empty(t, buckets.Captions)
	assert.Empty(t, buckets.Hashtags)
	// Buckets are empty slices, not nil, so they serialize as [].
	assert.NotNil(t, buckets.Hooks)
	assert.NotNil(t, buckets.Hashtags)
}

func TestNormalizeOutputNonObjectOutput(t *testing.T) {
	buckets := NormalizeOutput([]any{"whole output is a list"}, 3)
	assert.Empty(t, buckets.Hooks)
	assert.Empty(t, buckets.Captions)
}
