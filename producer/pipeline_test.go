package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter serves the plan call first and the pack call second.
type fakeCompleter struct {
	planText string
	packText string
	packErr  error

	prompts   []string
	jsonModes []bool
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.jsonModes = append(f.jsonModes, jsonMode)
	if len(f.prompts) == 1 {
		return f.planText, nil
	}
	return f.packText, f.packErr
}

func (f *fakeCompleter) Model() string { return "fake-completion-model" }

type fakeScanner struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeScanner) Scan(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeScanner) Model() string { return "fake-chat-model" }

func testInput(topK int) CampaignInput {
	in, _ := NewCampaignInput("Acme", "Widget", "10% off", "acme.com", "SMBs", topK)
	return in
}

func TestPipelineHappyPath(t *testing.T) {
	completer := &fakeCompleter{
		planText: `{"trend_queries": ["q1", "q2"], "angle_notes": "lean into speed"}`,
		packText: `{"schema_version": "vp_pack_v1", "output": {
			"hooks": ["h1", "h2", "h3"],
			"on_screen_overlays": ["o1", "o2", "o3"],
			"captions": ["c1", "c2", "c3"],
			"hashtags": ["#a", "#b", "#c"]}}`,
	}
	scanner := &fakeScanner{text: "trend bullet 1\ntrend bullet 2"}

	pack, logs, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(3))
	require.NoError(t, err)
	require.NotNil(t, pack)

	assert.Equal(t, SchemaVersion, pack.SchemaVersion)
	assert.False(t, pack.GeneratedAt.IsZero())
	assert.Equal(t, "Acme", pack.Input.BrandName)
	assert.Len(t, pack.Output.Hooks, 3)
	assert.Len(t, pack.Output.OnScreenOverlays, 3)
	assert.Len(t, pack.Output.Captions, 3)
	assert.Len(t, pack.Output.Hashtags, 3)

	// Only the pack stage runs in JSON mode.
	assert.Equal(t, []bool{false, true}, completer.jsonModes)

	// Three stage logs in call order.
	require.Len(t, logs, 3)
	assert.Equal(t, StagePlan, logs[0].Stage)
	assert.Equal(t, StageTrendScan, logs[1].Stage)
	assert.Equal(t, StagePack, logs[2].Stage)
	assert.Equal(t, "fake-chat-model", logs[1].Model)
}

func TestPipelinePromptChaining(t *testing.T) {
	completer := &fakeCompleter{
		planText: `{"trend_queries": ["skincare asmr", "before after edits"], "angle_notes": "angle: founder story"}`,
		packText: `{"output": {"hooks": ["h"], "on_screen_overlays": [], "captions": [], "hashtags": []}}`,
	}
	scanner := &fakeScanner{text: "VERBATIM TREND TEXT"}

	_, _, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(1))
	require.NoError(t, err)

	// Stage 2 prompt enumerates the recovered queries.
	require.Len(t, scanner.prompts, 1)
	assert.Contains(t, scanner.prompts[0], "1. skincare asmr")
	assert.Contains(t, scanner.prompts[0], "2. before after edits")

	// Stage 3 prompt embeds angle notes and the literal trend text.
	require.Len(t, completer.prompts, 2)
	assert.Contains(t, completer.prompts[1], "angle: founder story")
	assert.Contains(t, completer.prompts[1], "VERBATIM TREND TEXT")
	assert.Contains(t, completer.prompts[1], `"top_k": 1`)
}

func TestPipelineStage1FailureIsAbsorbed(t *testing.T) {
	completer := &fakeCompleter{
		planText: "sorry, I cannot produce JSON today",
		packText: `{"output": {"hooks": ["h"], "on_screen_overlays": ["o"], "captions": ["c"], "hashtags": ["#t"]}}`,
	}
	scanner := &fakeScanner{text: "still scanned"}

	pack, _, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(1))
	require.NoError(t, err)
	require.NotNil(t, pack)

	// Stage 2 still ran, with the no-queries placeholder.
	require.Len(t, scanner.prompts, 1)
	assert.Contains(t, scanner.prompts[0], "(no queries provided)")
}

func TestPipelineFinalStageWithoutJSONFails(t *testing.T) {
	completer := &fakeCompleter{
		planText: `{"trend_queries": ["q"], "angle_notes": "n"}`,
		packText: "prose only, no json object anywhere",
	}
	scanner := &fakeScanner{text: "trend text"}

	pack, logs, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(3))
	assert.Nil(t, pack)
	require.Len(t, logs, 3)

	var finalErr *FinalPackError
	require.ErrorAs(t, err, &finalErr)
	assert.Contains(t, finalErr.PlannerText, "trend_queries")
	assert.Equal(t, "trend text", finalErr.TrendText)
	assert.Equal(t, "prose only, no json object anywhere", finalErr.FinalText)
}

func TestPipelineFinalObjectWithoutOutputFieldFails(t *testing.T) {
	completer := &fakeCompleter{
		planText: `{"trend_queries": [], "angle_notes": ""}`,
		packText: `{"schema_version": "vp_pack_v1"}`,
	}
	scanner := &fakeScanner{}

	pack, _, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(3))
	assert.Nil(t, pack)

	var finalErr *FinalPackError
	assert.ErrorAs(t, err, &finalErr)
}

func TestPipelineScannerErrorAborts(t *testing.T) {
	completer := &fakeCompleter{planText: `{"trend_queries": [], "angle_notes": ""}`}
	scanner := &fakeScanner{err: errors.New("upstream 503")}

	pack, logs, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(3))
	assert.Nil(t, pack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trend_scan stage")

	// The pack stage never ran.
	assert.Len(t, completer.prompts, 1)
	require.Len(t, logs, 2)
	assert.Equal(t, "upstream 503", logs[1].Err)
}

func TestPipelineEmptyTrendTextIsAcceptable(t *testing.T) {
	completer := &fakeCompleter{
		planText: `{"trend_queries": ["q"], "angle_notes": "n"}`,
		packText: `{"output": {"hooks": ["h"], "on_screen_overlays": [], "captions": [], "hashtags": []}}`,
	}
	scanner := &fakeScanner{text: ""}

	pack, _, err := NewPipeline(completer, scanner).Run(context.Background(), testInput(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"h"}, pack.Output.Hooks)
}
