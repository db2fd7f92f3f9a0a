package producer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanFromTextValid(t *testing.T) {
	text := `Here you go: {"trend_queries": ["q1", " q2 ", ""], "angle_notes": "go hard on UGC"}`
	plan := PlanFromText(text)
	assert.Equal(t, []string{"q1", "q2"}, plan.TrendQueries)
	assert.Equal(t, "go hard on UGC", plan.AngleNotes)
}

func TestPlanFromTextMalformedDegradesToEmpty(t *testing.T) {
	plan := PlanFromText("the model rambled and returned no JSON")
	assert.Equal(t, EmptyPlan(), plan)

	plan = PlanFromText(`{"trend_queries": "not a list", "angle_notes": 42}`)
	assert.Empty(t, plan.TrendQueries)
	assert.Empty(t, plan.AngleNotes)
}

func TestPlanFromTextCapsQueriesAndNotes(t *testing.T) {
	text := `{"trend_queries": ["a","b","c","d","e","f","g"], "angle_notes": "` + strings.Repeat("n", 700) + `"}`
	plan := PlanFromText(text)
	assert.Len(t, plan.TrendQueries, 5)
	assert.Len(t, plan.AngleNotes, 600)
}

func TestPlanFromTextSkipsNonStringQueries(t *testing.T) {
	plan := PlanFromText(`{"trend_queries": ["ok", 3, null, "also ok"]}`)
	assert.Equal(t, []string{"ok", "also ok"}, plan.TrendQueries)
}
