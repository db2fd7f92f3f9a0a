package producer

import (
	"context"
	"fmt"
	"time"
)

// SchemaVersion identifies the output contract of a content pack.
const SchemaVersion = "vp_pack_v1"

// Stage names, used for audit logs and error wrapping.
const (
	StagePlan      = "plan"
	StageTrendScan = "trend_scan"
	StagePack      = "pack"
)

// Completer is the single-prompt completion provider used for the plan and
// pack stages. jsonMode asks the provider to constrain its own output to a
// JSON object (pack stage only).
type Completer interface {
	Complete(ctx context.Context, prompt string, jsonMode bool) (string, error)
	Model() string
}

// TrendScanner is the chat-style provider used for the trend scan stage.
type TrendScanner interface {
	Scan(ctx context.Context, prompt string) (string, error)
	Model() string
}

// ContentPack is the final artifact handed back to the caller.
type ContentPack struct {
	SchemaVersion string        `json:"schema_version"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Input         CampaignInput `json:"input"`
	Output        Buckets       `json:"output"`
}

// StageLog records one provider call for auditing. Response holds the raw
// extracted text, before any JSON recovery.
type StageLog struct {
	Stage     string
	Model     string
	Prompt    string
	Response  string
	LatencyMs int64
	Err       string
}

// FinalPackError reports that the pack stage produced no usable JSON.
// There is no safe fallback for a missing final pack, so this aborts the
// pipeline; the raw text of all three stages is kept for diagnosis.
type FinalPackError struct {
	PlannerText string
	TrendText   string
	FinalText   string
}

func (e *FinalPackError) Error() string {
	return "final stage produced no usable JSON"
}

// Pipeline runs the three-stage plan -> trend-scan -> pack sequence.
// It holds no per-request state; one Pipeline serves concurrent requests.
type Pipeline struct {
	completer Completer
	scanner   TrendScanner
}

func NewPipeline(completer Completer, scanner TrendScanner) *Pipeline {
	return &Pipeline{completer: completer, scanner: scanner}
}

// Run executes the pipeline for one validated CampaignInput. The stages are
// strictly sequential: each prompt embeds the previous stage's output.
// Stage logs are returned even on failure so callers can persist them.
//
// Failure policy: a stage-1 recovery miss degrades to the empty plan, any
// provider error aborts, and a pack stage without usable JSON returns
// *FinalPackError. No call is ever retried.
func (p *Pipeline) Run(ctx context.Context, in CampaignInput) (*ContentPack, []StageLog, error) {
	logs := make([]StageLog, 0, 3)

	// 1) plan
	plannerPrompt := PlannerPrompt(in)
	plannerText, err := p.complete(ctx, &logs, StagePlan, plannerPrompt, false)
	if err != nil {
		return nil, logs, fmt.Errorf("%s stage: %w", StagePlan, err)
	}
	plan := PlanFromText(plannerText)

	// 2) trend scan; empty text is acceptable
	scanPrompt := TrendScanPrompt(in, plan.TrendQueries)
	trendText, err := p.scan(ctx, &logs, scanPrompt)
	if err != nil {
		return nil, logs, fmt.Errorf("%s stage: %w", StageTrendScan, err)
	}

	// 3) final pack, JSON mode
	packPrompt := PackPrompt(in, plan.AngleNotes, trendText)
	finalText, err := p.complete(ctx, &logs, StagePack, packPrompt, true)
	if err != nil {
		return nil, logs, fmt.Errorf("%s stage: %w", StagePack, err)
	}

	pack := FirstJSONObject(finalText)
	if pack == nil || pack["output"] == nil {
		return nil, logs, &FinalPackError{
			PlannerText: plannerText,
			TrendText:   trendText,
			FinalText:   finalText,
		}
	}

	return &ContentPack{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Input:         in,
		Output:        NormalizeOutput(pack["output"], in.TopK),
	}, logs, nil
}

func (p *Pipeline) complete(ctx context.Context, logs *[]StageLog, stage, prompt string, jsonMode bool) (string, error) {
	start := time.Now()
	text, err := p.completer.Complete(ctx, prompt, jsonMode)
	*logs = append(*logs, stageLog(stage, p.completer.Model(), prompt, text, start, err))
	return text, err
}

func (p *Pipeline) scan(ctx context.Context, logs *[]StageLog, prompt string) (string, error) {
	start := time.Now()
	text, err := p.scanner.Scan(ctx, prompt)
	*logs = append(*logs, stageLog(StageTrendScan, p.scanner.Model(), prompt, text, start, err))
	return text, err
}

func stageLog(stage, model, prompt, response string, start time.Time, err error) StageLog {
	l := StageLog{
		Stage:     stage,
		Model:     model,
		Prompt:    prompt,
		Response:  response,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.Err = err.Error()
	}
	return l
}
