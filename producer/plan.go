package producer

import "strings"

const (
	maxTrendQueries = 5
	maxAngleNotes   = 600
)

// PlanResult is the stage-1 artifact: what to ask the trend scanner, plus
// free-form angle notes for the final pack prompt.
type PlanResult struct {
	TrendQueries []string `json:"trend_queries"`
	AngleNotes   string   `json:"angle_notes"`
}

// EmptyPlan is substituted when stage-1 output yields no usable JSON.
// Planning is advisory; the pipeline continues without it.
func EmptyPlan() PlanResult {
	return PlanResult{TrendQueries: []string{}, AngleNotes: ""}
}

// PlanFromText recovers a PlanResult from raw stage-1 model text.
// Any recovery or shape problem degrades to EmptyPlan instead of failing.
func PlanFromText(text string) PlanResult {
	obj := FirstJSONObject(text)
	if obj == nil {
		return EmptyPlan()
	}

	plan := EmptyPlan()

	if raw, ok := obj["trend_queries"].([]any); ok {
		for _, v := range raw {
			if len(plan.TrendQueries) >= maxTrendQueries {
				break
			}
			q, ok := v.(string)
			if !ok {
				continue
			}
			if q = strings.TrimSpace(q); q != "" {
				plan.TrendQueries = append(plan.TrendQueries, q)
			}
		}
	}

	if notes, ok := obj["angle_notes"].(string); ok {
		plan.AngleNotes = clampStr(notes, maxAngleNotes)
	}

	return plan
}
