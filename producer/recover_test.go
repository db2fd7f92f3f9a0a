package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstJSONObjectPlainObject(t *testing.T) {
	obj := FirstJSONObject(`{"a": 1, "b": "x"}`)
	assert.NotNil(t, obj)
	assert.Equal(t, float64(1), obj["a"])
	assert.Equal(t, "x", obj["b"])
}

func TestFirstJSONObjectWrappedInProse(t *testing.T) {
	text := "Sure! Here is the JSON you asked for:\n{\"trend_queries\": [\"a\"], \"angle_notes\": \"n\"}\nHope this helps."
	obj := FirstJSONObject(text)
	assert.NotNil(t, obj)
	assert.Equal(t, "n", obj["angle_notes"])
}

func TestFirstJSONObjectTakesFirstOfConcatenated(t *testing.T) {
	obj := FirstJSONObject(`{"first": true}{"second": true}`)
	assert.NotNil(t, obj)
	assert.Equal(t, true, obj["first"])
	_, hasSecond := obj["second"]
	assert.False(t, hasSecond)
}

func TestFirstJSONObjectNestedObjects(t *testing.T) {
	obj := FirstJSONObject(`prefix {"outer": {"inner": {"deep": 3}}} suffix`)
	assert.NotNil(t, obj)
	outer := obj["outer"].(map[string]any)
	inner := outer["inner"].(map[string]any)
	assert.Equal(t, float64(3), inner["deep"])
}

func TestFirstJSONObjectEscapedQuoteInString(t *testing.T) {
	// The escaped quote must not end the string, and the brace inside the
	// string must not perturb depth counting.
	obj := FirstJSONObject(`{"msg": "he said \"hi {now}\" loudly"}`)
	assert.NotNil(t, obj)
	assert.Equal(t, `he said "hi {now}" loudly`, obj["msg"])
}

func TestFirstJSONObjectBracesInsideStrings(t *testing.T) {
	obj := FirstJSONObject(`{"tpl": "use {placeholder} and }"}`)
	assert.NotNil(t, obj)
	assert.Equal(t, "use {placeholder} and }", obj["tpl"])
}

func TestFirstJSONObjectNoBraces(t *testing.T) {
	assert.Nil(t, FirstJSONObject("no json here at all"))
	assert.Nil(t, FirstJSONObject(""))
}

func TestFirstJSONObjectUnbalanced(t *testing.T) {
	assert.Nil(t, FirstJSONObject(`{"a": {"b": 1}`))
	assert.Nil(t, FirstJSONObject(`{"never closes": "`))
}

func TestFirstJSONObjectInvalidCandidateNoSecondTry(t *testing.T) {
	// The first balanced span is not valid JSON; recovery must give up
	// instead of trying the second, valid object.
	assert.Nil(t, FirstJSONObject(`{not valid} {"valid": true}`))
}

func TestFirstJSONObjectMarkdownFence(t *testing.T) {
	obj := FirstJSONObject("```json\n{\"ok\": true}\n```")
	assert.NotNil(t, obj)
	assert.Equal(t, true, obj["ok"])
}
