package producer

import (
	"strconv"
	"strings"
)

// Buckets is the fixed four-bucket output shape of a content pack.
type Buckets struct {
	Hooks            []string `json:"hooks"`
	OnScreenOverlays []string `json:"on_screen_overlays"`
	Captions         []string `json:"captions"`
	Hashtags         []string `json:"hashtags"`
}

// NormalizeOutput enforces the output contract on whatever the model put in
// the pack's "output" field: each bucket becomes at most topK non-empty
// strings in original order. A bucket that is missing or not a sequence
// becomes empty. No semantic checks (hashtag format, hook length) are done
// here; the normalizer only guarantees shape and cardinality.
func NormalizeOutput(output any, topK int) Buckets {
	fields, _ := output.(map[string]any)
	return Buckets{
		Hooks:            normalizeBucket(fields["hooks"], topK),
		OnScreenOverlays: normalizeBucket(fields["on_screen_overlays"], topK),
		Captions:         normalizeBucket(fields["captions"], topK),
		Hashtags:         normalizeBucket(fields["hashtags"], topK),
	}
}

func normalizeBucket(v any, topK int) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if len(out) >= topK {
			break
		}
		s, ok := coerceString(item)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// coerceString converts scalar JSON values to strings. Nulls and composite
// values (objects, arrays) are dropped rather than stringified.
func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
