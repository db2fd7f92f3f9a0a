package openaiclient

import (
	"encoding/json"
	"strings"
)

// ResponseEnvelope models the known shapes of a Responses API body. The
// provider family has shipped several of them over time; each one gets an
// explicit rule here instead of open-ended field probing:
//
//  1. top-level "output_text": already-joined text, preferred when non-empty
//  2. "output" items whose "content" is a list of parts with a "text" field
//  3. "output" items whose "content" is itself a plain string
//
// A body matching none of the rules extracts to "", which is a valid result;
// the pipeline decides downstream what an empty stage means.
type ResponseEnvelope struct {
	OutputText string       `json:"output_text"`
	Output     []OutputItem `json:"output"`
}

type OutputItem struct {
	Type    string      `json:"type"`
	Content ContentList `json:"content"`
}

// ContentList accepts both content variants: a list of parts (rule 2) and a
// bare string (rule 3). Unknown shapes decode to an empty list.
type ContentList []ContentPart

func (c *ContentList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ContentList{{Text: s}}
		return nil
	}

	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err != nil {
		*c = nil
		return nil
	}
	*c = parts
	return nil
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ParseEnvelope decodes a raw response body. A body that is not valid JSON
// yields an empty envelope rather than an error.
func ParseEnvelope(body []byte) *ResponseEnvelope {
	var env ResponseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &ResponseEnvelope{}
	}
	return &env
}

// Text returns the best-effort plain text of the envelope: the joined text
// field when present, otherwise every contributing content part in encounter
// order, newline-separated.
func (e *ResponseEnvelope) Text() string {
	if t := strings.TrimSpace(e.OutputText); t != "" {
		return t
	}

	var fragments []string
	for _, item := range e.Output {
		for _, part := range item.Content {
			if part.Text != "" {
				fragments = append(fragments, part.Text)
			}
		}
	}
	return strings.Join(fragments, "\n")
}
